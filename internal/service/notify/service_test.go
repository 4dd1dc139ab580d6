package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mamadbah2/ordercast/internal/config"
	"github.com/mamadbah2/ordercast/internal/domain/models"
	client "github.com/mamadbah2/ordercast/pkg/clients/whatsapp"
)

type mockClient struct {
	sent []models.TemplateMessage
	err  error
}

func (m *mockClient) SendTemplateMessage(_ context.Context, msg models.TemplateMessage) (*client.SendMessageResponse, error) {
	m.sent = append(m.sent, msg)
	if m.err != nil {
		return nil, m.err
	}
	return &client.SendMessageResponse{}, nil
}

func testConfig() config.Config {
	return config.Config{
		WhatsApp: config.WhatsAppConfig{
			Template: config.TemplateConfig{Name: "order_confirmation", Language: "en_GB"},
		},
		Orders: config.OrdersConfig{DefaultCountryCode: "IN"},
	}
}

func TestNotifyOrderCreated_SendsNormalizedPhone(t *testing.T) {
	mock := &mockClient{}
	svc := NewService(testConfig(), mock, nil, zap.NewNop())

	outcome, err := svc.NotifyOrderCreated(context.Background(), models.ShopifyOrder{
		Name:            "#1001",
		ShippingAddress: &models.OrderAddress{Phone: "98765 43210", CountryCode: "IN"},
	})

	require.NoError(t, err)
	assert.Equal(t, OutcomeSent, outcome)
	require.Len(t, mock.sent, 1)
	assert.Equal(t, "+919876543210", mock.sent[0].To)
}

func TestNotifyOrderCreated_SkipsWithoutRecipient(t *testing.T) {
	mock := &mockClient{}
	svc := NewService(testConfig(), mock, nil, zap.NewNop())

	outcome, err := svc.NotifyOrderCreated(context.Background(), models.ShopifyOrder{
		Name:     "#1001",
		Customer: &models.Customer{FirstName: "Asha"},
	})

	require.NoError(t, err)
	assert.Equal(t, OutcomeSkipped, outcome)
	assert.Empty(t, mock.sent, "no dispatch call may happen without a recipient")
}

func TestNotifyOrderCreated_SkipsUnusablePhone(t *testing.T) {
	mock := &mockClient{}
	svc := NewService(testConfig(), mock, nil, zap.NewNop())

	outcome, err := svc.NotifyOrderCreated(context.Background(), models.ShopifyOrder{
		Customer: &models.Customer{Phone: "n/a"},
	})

	require.NoError(t, err)
	assert.Equal(t, OutcomeSkipped, outcome)
	assert.Empty(t, mock.sent)
}

func TestNotifyOrderCreated_ReportsDispatchFailure(t *testing.T) {
	mock := &mockClient{err: errors.New("whatsapp api error: code=131026, message=undeliverable")}
	svc := NewService(testConfig(), mock, nil, zap.NewNop())

	outcome, err := svc.NotifyOrderCreated(context.Background(), models.ShopifyOrder{
		Customer: &models.Customer{Phone: "+919876543210"},
	})

	require.Error(t, err)
	assert.Equal(t, OutcomeFailed, outcome)
	require.Len(t, mock.sent, 1, "exactly one attempt, no retry")
}
