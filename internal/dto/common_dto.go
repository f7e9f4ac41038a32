package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Enum carries an enumeration value given either as a JSON number or a JSON string
type Enum string

func (e *Enum) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*e = Enum(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("enum must be a string or an integer: %w", err)
	}
	*e = Enum(n.String())
	return nil
}

// PageResponse wraps one page of a listing
type PageResponse struct {
	Items  interface{} `json:"items"`
	Total  int64       `json:"total" example:"42"`
	Limit  int         `json:"limit" example:"20"`
	Offset int         `json:"offset" example:"0"`
}
