package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GuestName is stored when a commenter leaves the name field blank.
const GuestName = "Guest"

// Validate checks if the comment meets all validation requirements
func (c *Comment) Validate() error {
	if err := validate.Struct(c); err != nil {
		return err
	}

	if c.When.IsZero() {
		return errors.New("when cannot be zero")
	}

	return nil
}

// BeforeCreate sets up any necessary fields before creation
func (c *Comment) BeforeCreate() {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		c.Name = GuestName
	}
	c.Text = strings.TrimSpace(c.Text)
	if c.When.IsZero() {
		c.When = time.Now()
	}
}
