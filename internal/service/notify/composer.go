package notify

import (
	"github.com/mamadbah2/ordercast/internal/config"
	"github.com/mamadbah2/ordercast/internal/domain/models"
)

// purposeText fills the template's second placeholder. The registered
// template reads roughly: "Hi {{1}}, thanks for {{2}}! Order {{3}} with
// {{4}} is confirmed. Track it with token {{5}}."
const purposeText = "your purchase"

// Parameter positions below are the contract with the registered template.
// Position is all the provider matches on: sending the wrong count or order
// fails delivery silently at Meta with no local signal, so any change here
// must ship together with a template re-registration. Keep this the only
// place that builds template components.
//
//	1: customer first name
//	2: static purpose text
//	3: order identifier ("#1001")
//	4: line item summary ("2 x Widget, 1 x Gadget")
//	5: order token (also bound to the URL button when the template has one)

// ComposeTemplate builds the Cloud API template invocation for an order
// confirmation addressed to the normalized phone number. Pure data
// transformation, no I/O.
func ComposeTemplate(rec models.OrderRecord, to string, tpl config.TemplateConfig) models.TemplateMessage {
	components := []models.TemplateComponent{
		{
			Type: "body",
			Parameters: []models.TemplateParameter{
				{Type: "text", Text: rec.CustomerName},
				{Type: "text", Text: purposeText},
				{Type: "text", Text: rec.OrderID},
				{Type: "text", Text: rec.ItemSummary},
				{Type: "text", Text: rec.Token},
			},
		},
	}

	if tpl.HasButton {
		components = append(components, models.TemplateComponent{
			Type:    "button",
			SubType: "url",
			Index:   "0",
			Parameters: []models.TemplateParameter{
				{Type: "text", Text: rec.Token},
			},
		})
	}

	return models.TemplateMessage{
		MessagingProduct: "whatsapp",
		To:               to,
		Type:             "template",
		Template: models.Template{
			Name:       tpl.Name,
			Language:   models.TemplateLanguage{Code: tpl.Language},
			Components: components,
		},
	}
}
