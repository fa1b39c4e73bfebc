package directory

import (
	"errors"
	"strings"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
)

// Customer is a sender or receiver of packages. It is read-only for the client.
type Customer struct {
	id    kernel.ID
	name  string
	email string
	phone string
}

func RestoreCustomer(id kernel.ID, name, email, phone string) (Customer, error) {
	if err := errors.Join(id.Validate(), required("name", name)); err != nil {
		return Customer{}, err
	}
	return Customer{id: id, name: strings.TrimSpace(name), email: email, phone: phone}, nil
}

func (c Customer) ID() kernel.ID {
	return c.id
}

func (c Customer) Name() string {
	return c.name
}

func (c Customer) Email() string {
	return c.email
}

func (c Customer) Phone() string {
	return c.phone
}

func required(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}
