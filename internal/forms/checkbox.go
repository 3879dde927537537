package forms

import (
	"fmt"
	"net/url"
	"strings"
)

// Checkbox binds an HTML checkbox. Browsers post "on" for a ticked box without a value
// attribute and omit unticked boxes entirely.
type Checkbox bool

// UnmarshalParam implements gin's binding.BindUnmarshaler.
func (c *Checkbox) UnmarshalParam(param string) error {
	v, err := ParseCheckbox(param)
	if err != nil {
		return err
	}
	*c = Checkbox(v)
	return nil
}

// ParseCheckbox reads a posted checkbox value. An empty value is unticked.
func ParseCheckbox(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "false", "off", "0", "no":
		return false, nil
	case "on", "true", "1", "yes", "checked":
		return true, nil
	}
	return false, fmt.Errorf("invalid checkbox value %q", raw)
}

// FormMessage is the key of a form-level message in FieldErrors.
const FormMessage = "form"

// BindErrors explains a failed gin bind in terms of the submitted form. Checkboxes whose
// posted value cannot be read get their own message; anything else lands on FormMessage.
func BindErrors(err error, values url.Values, checkboxes ...string) FieldErrors {
	fields := FieldErrors{}
	for _, name := range checkboxes {
		for _, v := range values[name] {
			if _, perr := ParseCheckbox(v); perr != nil {
				fields[name] = "Tick or untick this box."
				break
			}
		}
	}
	if len(fields) == 0 && err != nil {
		fields[FormMessage] = "The form could not be read. Check the values and try again."
	}
	return fields
}
