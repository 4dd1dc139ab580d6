package models

// TemplateMessage is the WhatsApp Cloud API template message payload.
// Components are positional: the provider matches parameters to the
// placeholders of the pre-registered template strictly by order, and a
// mismatch is a silent delivery failure on Meta's side, so this structure
// is only ever assembled by the composer.
type TemplateMessage struct {
	MessagingProduct string   `json:"messaging_product"`
	To               string   `json:"to"`
	Type             string   `json:"type"`
	Template         Template `json:"template"`
}

// Template names the registered template and carries its components.
type Template struct {
	Name       string              `json:"name"`
	Language   TemplateLanguage    `json:"language"`
	Components []TemplateComponent `json:"components"`
}

// TemplateLanguage is the BCP-47-ish language tag the template was
// registered under (e.g. "en_GB").
type TemplateLanguage struct {
	Code string `json:"code"`
}

// TemplateComponent is either the body parameter list or a button binding.
type TemplateComponent struct {
	Type       string              `json:"type"`
	SubType    string              `json:"sub_type,omitempty"`
	Index      string              `json:"index,omitempty"`
	Parameters []TemplateParameter `json:"parameters"`
}

// TemplateParameter is a single positional value.
type TemplateParameter struct {
	Type string `json:"type"`
	Text string `json:"text"`
}
