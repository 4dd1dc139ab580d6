package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/ordercast/internal/config"
	"github.com/mamadbah2/ordercast/internal/domain/models"
)

func testRecord() models.OrderRecord {
	return models.OrderRecord{
		OrderID:      "#1001",
		CustomerName: "Asha",
		ItemSummary:  "2 x Widget, 1 x Gadget",
		Token:        "tok_abc",
	}
}

func TestComposeTemplate_BodyParameterOrder(t *testing.T) {
	tpl := config.TemplateConfig{Name: "order_confirmation", Language: "en_GB"}

	msg := ComposeTemplate(testRecord(), "+919876543210", tpl)

	assert.Equal(t, "whatsapp", msg.MessagingProduct)
	assert.Equal(t, "+919876543210", msg.To)
	assert.Equal(t, "template", msg.Type)
	assert.Equal(t, "order_confirmation", msg.Template.Name)
	assert.Equal(t, "en_GB", msg.Template.Language.Code)

	require.Len(t, msg.Template.Components, 1)
	body := msg.Template.Components[0]
	assert.Equal(t, "body", body.Type)

	require.Len(t, body.Parameters, 5)
	assert.Equal(t, "Asha", body.Parameters[0].Text)
	assert.Equal(t, purposeText, body.Parameters[1].Text)
	assert.Equal(t, "#1001", body.Parameters[2].Text)
	assert.Equal(t, "2 x Widget, 1 x Gadget", body.Parameters[3].Text)
	assert.Equal(t, "tok_abc", body.Parameters[4].Text)

	for _, p := range body.Parameters {
		assert.Equal(t, "text", p.Type)
	}
}

func TestComposeTemplate_ButtonComponentWhenConfigured(t *testing.T) {
	tpl := config.TemplateConfig{Name: "order_confirmation", Language: "en_GB", HasButton: true}

	msg := ComposeTemplate(testRecord(), "+919876543210", tpl)

	require.Len(t, msg.Template.Components, 2)
	button := msg.Template.Components[1]
	assert.Equal(t, "button", button.Type)
	assert.Equal(t, "url", button.SubType)
	assert.Equal(t, "0", button.Index)
	require.Len(t, button.Parameters, 1)
	assert.Equal(t, "tok_abc", button.Parameters[0].Text)
}
