package validator_test

import (
	"coworking/shared/failure"
	"coworking/shared/validator"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type slotQuery struct {
	Name string `json:"name" validate:"required,max=10"`
	Type string `json:"type" validate:"required,resourcetype"`
	Date string `json:"date" validate:"required,date"`
	From string `json:"from" validate:"required,clock"`
	At   string `json:"at"   validate:"omitempty,timestamp"`
}

func init() {
	validator.RegisterResourceTypes("WORKSPACE", "CONFERENCE_ROOM")
}

func TestValidateStruct(t *testing.T) {
	valid := slotQuery{Name: "Room A", Type: "WORKSPACE", Date: "2024-06-22", From: "09:00", At: "2024-06-22 09:00"}

	tests := []struct {
		name    string
		mutate  func(q *slotQuery)
		message string
	}{
		{name: "valid", mutate: func(_ *slotQuery) {}},
		{name: "missing name", mutate: func(q *slotQuery) { q.Name = "" }, message: "name is required"},
		{name: "long name", mutate: func(q *slotQuery) { q.Name = strings.Repeat("x", 11) }, message: "name must be at most 10 characters long"},
		{name: "bad type", mutate: func(q *slotQuery) { q.Type = "KITCHEN" }, message: "type must be WORKSPACE or CONFERENCE_ROOM"},
		{name: "bad date", mutate: func(q *slotQuery) { q.Date = "22.06.2024" }, message: "date must be a date in YYYY-MM-DD format"},
		{name: "bad clock", mutate: func(q *slotQuery) { q.From = "9am" }, message: "from must be a time in HH:MM format"},
		{name: "bad timestamp", mutate: func(q *slotQuery) { q.At = "2024-06-22T09:00" }, message: "at must be a timestamp in YYYY-MM-DD HH:MM format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := valid
			tt.mutate(&q)

			err := validator.ValidateStruct(&q)
			if tt.message == "" {
				assert.NoError(t, err)

				return
			}

			assert.EqualError(t, err, tt.message)
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		})
	}
}

func TestValidate(t *testing.T) {
	var q slotQuery

	err := validator.Validate(strings.NewReader(`{"name":"Room","type":"CONFERENCE_ROOM","date":"2024-06-22","from":"10:00"}`), &q)
	assert.NoError(t, err)
	assert.Equal(t, "CONFERENCE_ROOM", q.Type)

	err = validator.Validate(strings.NewReader(`{"name":`), &q)
	assert.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, validator.ValidateVar("2024-06-22", "date"))
	assert.EqualError(t, validator.ValidateVar("", "required"), "value is required")
	assert.EqualError(t, validator.ValidateVar("size", "oneof=date user"), "value must be one of date user")
}
