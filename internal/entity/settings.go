package entity

import (
	"fmt"
	"strings"
)

// Requisites are the bank details money for one tax category is sent to.
type Requisites struct {
	Account       string
	EDRPOU        string
	RecipientName string
	Purpose       string
}

// Validate checks that the requisites are usable for a payment.
func (r Requisites) Validate() error {
	if strings.TrimSpace(r.Account) == "" {
		return fmt.Errorf("%w: empty account", ErrMisconfigured)
	}

	if strings.TrimSpace(r.EDRPOU) == "" {
		return fmt.Errorf("%w: empty edrpou", ErrMisconfigured)
	}

	return nil
}

// Settings is the latest row of the debt registry settings.
type Settings struct {
	ID          int64
	CallbackURL string
	requisites  map[string]Requisites
}

func NewSettings(id int64, callbackURL string, requisites map[string]Requisites) Settings {
	return Settings{
		ID:          id,
		CallbackURL: callbackURL,
		requisites:  requisites,
	}
}

// Requisites returns the requisites stored under the given settings prefix.
func (s Settings) Requisites(prefix string) (Requisites, error) {
	r, ok := s.requisites[prefix]
	if !ok {
		return Requisites{}, fmt.Errorf("%w: no requisites for %q", ErrMisconfigured, prefix)
	}

	err := r.Validate()
	if err != nil {
		return Requisites{}, fmt.Errorf("requisites %q: %w", prefix, err)
	}

	return r, nil
}
