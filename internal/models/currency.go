package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Currency is a single entry of the currency catalog.
type Currency struct {
	// Currency code
	// example: USD
	Code string

	// Display name
	// example: US Dollar
	Name string
}

// CurrencyCatalog maps currency codes to display names.
// Entries keep the order in which the exchange service listed them.
type CurrencyCatalog []Currency

// Name returns the display name for code.
func (c CurrencyCatalog) Name(code string) (string, bool) {
	for _, cur := range c {
		if cur.Code == code {
			return cur.Name, true
		}
	}
	return "", false
}

// Has reports whether code is part of the catalog.
func (c CurrencyCatalog) Has(code string) bool {
	_, ok := c.Name(code)
	return ok
}

// UnmarshalJSON decodes a JSON object of code -> name pairs keeping key order.
// A repeated key keeps its first position and takes the last value.
func (c *CurrencyCatalog) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("currency catalog: expected JSON object, got %v", tok)
	}

	catalog := CurrencyCatalog{}
	index := make(map[string]int)

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		code, ok := tok.(string)
		if !ok {
			return fmt.Errorf("currency catalog: unexpected key %v", tok)
		}

		var name string
		if err := dec.Decode(&name); err != nil {
			return fmt.Errorf("currency catalog: name for %q: %w", code, err)
		}

		if i, seen := index[code]; seen {
			catalog[i].Name = name
			continue
		}
		index[code] = len(catalog)
		catalog = append(catalog, Currency{Code: code, Name: name})
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	*c = catalog
	return nil
}

// MarshalJSON encodes the catalog back into a JSON object in catalog order.
func (c CurrencyCatalog) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, cur := range c {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(cur.Code)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(cur.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
