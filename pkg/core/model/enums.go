// Copyright (c) 2023-2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import (
	"errors"
	"fmt"
)

// ErrUnknownEnumValue indicates that a given string may not be parsed
// as one of the known values of an enum. This error encodes a
// description string and does not communicate the invalid string
// itself because the caller of a ParseX function already knows about
// it. Validate methods return an EnumError which wraps this error and
// carries the invalid value, because their callers may have obtained
// that value from a decoded record and not from their own arguments.
var ErrUnknownEnumValue = errors.New("unknown enum value")

// EnumError indicates an invalid value for the Enum enumeration type,
// e.g., "fuel type".
type EnumError struct {
	Enum  string
	Value string
}

// Error implements the error interface.
func (e *EnumError) Error() string {
	return fmt.Sprintf("invalid %s: %q", e.Enum, e.Value)
}

// Unwrap returns ErrUnknownEnumValue, so errors.Is can detect it.
func (e *EnumError) Unwrap() error {
	return ErrUnknownEnumValue
}

// FuelType specifies the fuel which is consumed by a car.
// It is a string-backed enum, hence, it is (de)serialized by the JSON
// codec of the REST API with no extra effort.
type FuelType string

// Valid values for the FuelType enum.
const (
	FuelPetrol   FuelType = "Petrol"
	FuelDiesel   FuelType = "Diesel"
	FuelElectric FuelType = "Electric"
	FuelHybrid   FuelType = "Hybrid"
)

// AllFuelTypes returns the valid fuel types in their declaration
// order, e.g., for populating a select control.
func AllFuelTypes() []FuelType {
	return []FuelType{FuelPetrol, FuelDiesel, FuelElectric, FuelHybrid}
}

// Validate returns nil if f is a known fuel type.
func (f FuelType) Validate() error {
	switch f {
	case FuelPetrol, FuelDiesel, FuelElectric, FuelHybrid:
		return nil
	default:
		return &EnumError{Enum: "fuel type", Value: string(f)}
	}
}

func (f FuelType) String() string {
	return string(f)
}

// ParseFuelType parses s as a FuelType. Unknown strings cause an
// empty FuelType and ErrUnknownEnumValue to be returned.
func ParseFuelType(s string) (FuelType, error) {
	f := FuelType(s)
	if f.Validate() != nil {
		return "", ErrUnknownEnumValue
	}
	return f, nil
}

// Transmission specifies the gearbox kind of a car.
type Transmission string

// Valid values for the Transmission enum.
const (
	TransmissionManual    Transmission = "Manual"
	TransmissionAutomatic Transmission = "Automatic"
)

// AllTransmissions returns the valid transmissions in their
// declaration order.
func AllTransmissions() []Transmission {
	return []Transmission{TransmissionManual, TransmissionAutomatic}
}

// Validate returns nil if t is a known transmission.
func (t Transmission) Validate() error {
	switch t {
	case TransmissionManual, TransmissionAutomatic:
		return nil
	default:
		return &EnumError{Enum: "transmission", Value: string(t)}
	}
}

func (t Transmission) String() string {
	return string(t)
}

// ParseTransmission parses s as a Transmission. Unknown strings cause
// an empty Transmission and ErrUnknownEnumValue to be returned.
func ParseTransmission(s string) (Transmission, error) {
	t := Transmission(s)
	if t.Validate() != nil {
		return "", ErrUnknownEnumValue
	}
	return t, nil
}

// BodyType specifies the body style of a car.
type BodyType string

// Valid values for the BodyType enum.
const (
	BodySedan       BodyType = "Sedan"
	BodySUV         BodyType = "SUV"
	BodyHatchback   BodyType = "Hatchback"
	BodyCoupe       BodyType = "Coupe"
	BodyConvertible BodyType = "Convertible"
	BodyPickup      BodyType = "Pickup"
)

// AllBodyTypes returns the valid body types in their declaration
// order.
func AllBodyTypes() []BodyType {
	return []BodyType{
		BodySedan, BodySUV, BodyHatchback,
		BodyCoupe, BodyConvertible, BodyPickup,
	}
}

// Validate returns nil if b is a known body type.
func (b BodyType) Validate() error {
	switch b {
	case BodySedan, BodySUV, BodyHatchback,
		BodyCoupe, BodyConvertible, BodyPickup:
		return nil
	default:
		return &EnumError{Enum: "body type", Value: string(b)}
	}
}

func (b BodyType) String() string {
	return string(b)
}

// ParseBodyType parses s as a BodyType. Unknown strings cause an
// empty BodyType and ErrUnknownEnumValue to be returned.
func ParseBodyType(s string) (BodyType, error) {
	b := BodyType(s)
	if b.Validate() != nil {
		return "", ErrUnknownEnumValue
	}
	return b, nil
}
