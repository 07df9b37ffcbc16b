package hibob

import (
	"bytes"
	"encoding/json"
	"io"

	"employee-list/internal/models"

	"github.com/pkg/errors"
)

type wireEnvelope struct {
	Employees *[]wireEmployee `json:"employees"`
}

type wireEmployee struct {
	Email     *string `json:"email"`
	FirstName *string `json:"firstName"`
	Surname   *string `json:"surname"`
}

// Decode parses the people envelope. Every record must carry email, firstName
// and surname as strings; other person attributes are ignored.
func Decode(payload []byte) ([]models.Employee, error) {
	dec := json.NewDecoder(bytes.NewReader(payload))

	var envelope wireEnvelope
	if err := dec.Decode(&envelope); err != nil {
		return nil, &DecodeError{Err: errors.Wrap(err, "envelope")}
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, &DecodeError{Err: errors.New("trailing data after envelope")}
	}
	if envelope.Employees == nil {
		return nil, &DecodeError{Err: errors.New(`missing "employees" array`)}
	}

	employees := make([]models.Employee, 0, len(*envelope.Employees))
	for i, w := range *envelope.Employees {
		switch {
		case w.Email == nil:
			return nil, &DecodeError{Err: errors.Errorf("employee %d: missing email", i)}
		case w.FirstName == nil:
			return nil, &DecodeError{Err: errors.Errorf("employee %d: missing firstName", i)}
		case w.Surname == nil:
			return nil, &DecodeError{Err: errors.Errorf("employee %d: missing surname", i)}
		}
		employees = append(employees, models.Employee{
			Email:     *w.Email,
			FirstName: *w.FirstName,
			Surname:   *w.Surname,
		})
	}
	return employees, nil
}
