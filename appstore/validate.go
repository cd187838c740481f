package appstore

import (
	"fmt"
	"strings"
)

// storefront resolves a country code to its storefront id, validating it
// against the market allowlist.
func storefront(country string) (string, error) {
	id, ok := markets[strings.ToLower(country)]
	if !ok {
		return "", fmt.Errorf("%w: unknown country code %q", ErrInvalidInput, country)
	}
	return id, nil
}

func validateCountry(country string) (string, error) {
	country = strings.ToLower(country)
	if _, ok := markets[country]; !ok {
		return "", fmt.Errorf("%w: unknown country code %q", ErrInvalidInput, country)
	}
	return country, nil
}

func validateCollection(collection Collection) error {
	if !collections[collection] {
		return fmt.Errorf("%w: unknown collection %q", ErrInvalidInput, collection)
	}
	return nil
}

// category 0 means "all categories" and is always allowed.
func validateCategory(category int) error {
	if category == 0 {
		return nil
	}
	if !categories[category] {
		return fmt.Errorf("%w: unknown category %d", ErrInvalidInput, category)
	}
	return nil
}

func validateSort(sort Sort) error {
	if !sorts[sort] {
		return fmt.Errorf("%w: unknown sort %q", ErrInvalidInput, sort)
	}
	return nil
}

func validateDevice(device Device) error {
	if !devices[device] {
		return fmt.Errorf("%w: unknown device %q", ErrInvalidInput, device)
	}
	return nil
}
