// Package validation checks request input before it reaches the store.
package validation

import (
	"bytes"
	"encoding/json"
	"io"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"task-manager/internal/apierror"
)

const (
	MaxTitleLength = 255

	msgInvalidTaskID   = "Task ID must be a valid positive integer"
	msgTitleRequired   = "Title is required and must be a non-empty string"
	msgTitleTooLong    = "Title must be between 1 and 255 characters"
	msgCategoryID      = "Category ID is required and must be a positive integer"
	msgDescription     = "Description must be a string if provided"
	msgCompleted       = "Completed field must be a boolean value (true or false)"
	msgBodyNotAnObject = "Request body must be a JSON object"
)

var taskIDPattern = regexp.MustCompile(`^\s*\d+\s*$`)

// CreateTaskInput is the normalized payload for creating a task.
type CreateTaskInput struct {
	Title       string
	Description *string
	CategoryID  uint
}

// UpdateTaskInput is the normalized payload for updating a task.
type UpdateTaskInput struct {
	Completed bool
}

// ParseRequestBody decodes a JSON object. Numbers are kept as json.Number so
// integral checks see the literal the client sent.
func ParseRequestBody(r io.Reader) (map[string]any, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, apierror.Parse()
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, apierror.Parse()
	}
	// Trailing garbage after the first value is malformed JSON too.
	if _, err := dec.Token(); err != io.EOF {
		return nil, apierror.Parse()
	}

	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, apierror.Validation("Validation failed", msgBodyNotAnObject)
	}
	return obj, nil
}

// ValidateTaskID parses a path parameter into a positive task ID. IDs are
// bounded by the signed 64-bit primary key column.
func ValidateTaskID(raw string) (uint, error) {
	if !taskIDPattern.MatchString(raw) {
		return 0, apierror.Validation("Invalid task ID", msgInvalidTaskID)
	}
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, apierror.Validation("Invalid task ID", msgInvalidTaskID)
	}
	return uint(id), nil
}

// ValidateCreateTaskInput checks every field and reports all violations at
// once.
func ValidateCreateTaskInput(input map[string]any) (CreateTaskInput, error) {
	var problems []string

	title, ok := input["title"].(string)
	title = strings.TrimSpace(title)
	switch {
	case !ok || title == "":
		problems = append(problems, msgTitleRequired)
	case utf8.RuneCountInString(title) > MaxTitleLength:
		problems = append(problems, msgTitleTooLong)
	}

	categoryID, ok := positiveInteger(input["categoryId"])
	if !ok {
		problems = append(problems, msgCategoryID)
	}

	var description *string
	if rawDescription, present := input["description"]; present {
		text, isString := rawDescription.(string)
		switch {
		case !isString:
			problems = append(problems, msgDescription)
		case strings.TrimSpace(text) != "":
			trimmed := strings.TrimSpace(text)
			description = &trimmed
		}
	}

	if len(problems) > 0 {
		return CreateTaskInput{}, apierror.Validation("Validation failed", problems...)
	}

	return CreateTaskInput{
		Title:       title,
		Description: description,
		CategoryID:  categoryID,
	}, nil
}

// ValidateUpdateTaskInput requires a boolean "completed". Other fields are
// ignored.
func ValidateUpdateTaskInput(input map[string]any) (UpdateTaskInput, error) {
	completed, ok := input["completed"].(bool)
	if !ok {
		return UpdateTaskInput{}, apierror.Validation("Validation failed", msgCompleted)
	}
	return UpdateTaskInput{Completed: completed}, nil
}

// positiveInteger accepts JSON numbers with an integral value. Strings,
// booleans and fractional numbers are rejected rather than coerced.
func positiveInteger(value any) (uint, bool) {
	var f float64
	switch v := value.(type) {
	case json.Number:
		if n, err := v.Int64(); err == nil {
			if n <= 0 {
				return 0, false
			}
			return uint(n), true
		}
		parsed, err := v.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case float64:
		f = v
	case int:
		f = float64(v)
	default:
		return 0, false
	}

	// float64(math.MaxInt64) rounds up to 2^63, so >= keeps the result in range.
	if f != math.Trunc(f) || f <= 0 || f >= math.MaxInt64 {
		return 0, false
	}
	return uint(f), true
}
