// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package contactuc contains the contact UseCase which builds the deep
// links of the WhatsApp, Viber, and email contact actions. Links are
// pure functions of the business contact information and a car; they
// are opened by the caller (e.g., as a redirect or a printed URL).
package contactuc

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"unicode"

	"github.com/momeni/car-dealer/pkg/core/model"
)

// Business holds the dealership contact information.
type Business struct {
	Name  string
	Phone string // in international format, e.g., +1234567890
	Email string
}

// Channel is a contact channel.
type Channel string

// Supported contact channels.
const (
	WhatsApp Channel = "whatsapp"
	Viber    Channel = "viber"
	Email    Channel = "email"
)

// Channels returns the supported channels in their display order.
func Channels() []Channel {
	return []Channel{WhatsApp, Viber, Email}
}

// ErrUnknownChannel indicates an unsupported contact channel name.
var ErrUnknownChannel = errors.New("unknown contact channel")

// ParseChannel parses a channel name.
func ParseChannel(s string) (Channel, error) {
	switch c := Channel(strings.ToLower(s)); c {
	case WhatsApp, Viber, Email:
		return c, nil
	default:
		return "", ErrUnknownChannel
	}
}

// UseCase represents the contact use case.
type UseCase struct {
	business Business
	currency model.Currency
}

// New instantiates a contact use case. Phone and email are required.
func New(b Business, c model.Currency) (*UseCase, error) {
	switch {
	case digits(b.Phone) == "":
		return nil, errors.New("business phone is required")
	case !strings.Contains(b.Email, "@"):
		return nil, errors.New("business email is required")
	}
	if _, err := model.ParseCurrency(string(c)); err != nil {
		return nil, fmt.Errorf("currency %q: %w", c, err)
	}
	return &UseCase{business: b, currency: c}, nil
}

// Business returns the dealership contact information.
func (uc *UseCase) Business() Business {
	return uc.business
}

// Currency returns the currency which prices are formatted in.
func (uc *UseCase) Currency() model.Currency {
	return uc.currency
}

const generalMessage = "Hi! I'm interested in your cars. Can you provide more information?"

func (uc *UseCase) interest(car model.Car) string {
	return fmt.Sprintf(
		"Hi! I'm interested in the %d %s %s listed for %s. "+
			"Could you please provide more details?",
		car.Year, car.Brand, car.Model, uc.currency.Format(car.Price),
	)
}

// WhatsApp returns a wa.me link with a prefilled inquiry about car.
func (uc *UseCase) WhatsApp(car model.Car) string {
	return uc.whatsApp(uc.interest(car))
}

// Viber returns a viber chat link with a prefilled inquiry about car.
func (uc *UseCase) Viber(car model.Car) string {
	return "viber://chat?number=" + encode(uc.business.Phone) +
		"&text=" + encode(uc.interest(car))
}

// Email returns a mailto link with an inquiry subject and body.
func (uc *UseCase) Email(car model.Car) string {
	subject := fmt.Sprintf("Inquiry about %d %s %s",
		car.Year, car.Brand, car.Model)
	body := fmt.Sprintf(`Hello,

I am interested in the %d %s %s listed for %s.

Could you please provide more information about the vehicle's condition, maintenance history, and availability for viewing?

Thank you for your time.

Best regards`, car.Year, car.Brand, car.Model, uc.currency.Format(car.Price))
	return uc.mailto(subject, body)
}

// GeneralWhatsApp returns a wa.me link with a general inquiry.
func (uc *UseCase) GeneralWhatsApp() string {
	return uc.whatsApp(generalMessage)
}

// GeneralViber returns a viber chat link with no prefilled text.
func (uc *UseCase) GeneralViber() string {
	return "viber://chat?number=" + encode(uc.business.Phone)
}

// GeneralEmail returns a mailto link with a general inquiry.
func (uc *UseCase) GeneralEmail() string {
	return uc.mailto("Car Inquiry", generalMessage)
}

// Link returns the ch link for car.
func (uc *UseCase) Link(ch Channel, car model.Car) (string, error) {
	switch ch {
	case WhatsApp:
		return uc.WhatsApp(car), nil
	case Viber:
		return uc.Viber(car), nil
	case Email:
		return uc.Email(car), nil
	default:
		return "", ErrUnknownChannel
	}
}

// GeneralLink returns the ch link which is not about a specific car.
func (uc *UseCase) GeneralLink(ch Channel) (string, error) {
	switch ch {
	case WhatsApp:
		return uc.GeneralWhatsApp(), nil
	case Viber:
		return uc.GeneralViber(), nil
	case Email:
		return uc.GeneralEmail(), nil
	default:
		return "", ErrUnknownChannel
	}
}

func (uc *UseCase) whatsApp(text string) string {
	return "https://wa.me/" + digits(uc.business.Phone) +
		"?text=" + encode(text)
}

func (uc *UseCase) mailto(subject, body string) string {
	return "mailto:" + uc.business.Email +
		"?subject=" + encode(subject) + "&body=" + encode(body)
}

func digits(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, s)
}

// encode percent-encodes s as a URI component, so spaces become %20
// and not plus signs (which mail and chat clients show verbatim).
func encode(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
