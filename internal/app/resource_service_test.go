package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/disaster-response-web/internal/domain"
	"github.com/jsamuelsen11/disaster-response-web/internal/domain/form"
	"github.com/jsamuelsen11/disaster-response-web/internal/domain/resource"
	"github.com/jsamuelsen11/disaster-response-web/mocks"
)

func TestNewResourceService_NilLogger(t *testing.T) {
	t.Parallel()

	svc := NewResourceService(mocks.NewMockResourceClient(t), nil)
	if svc.logger == nil {
		t.Fatal("NewResourceService(nil logger) should create a no-op logger, got nil")
	}
}

func TestResourceService_List(t *testing.T) {
	t.Parallel()

	t.Run("returns records on success", func(t *testing.T) {
		t.Parallel()
		client := mocks.NewMockResourceClient(t)
		svc := NewResourceService(client, discardLogger())

		want := []domain.Record{{"idAlerta": 1}, {"idAlerta": 2}}
		client.EXPECT().List(mock.Anything, "alertas", 0, 10).Return(want, nil).Once()

		got, err := svc.List(context.Background(), resource.Alerts, 0, 10)
		if err != nil {
			t.Fatalf("List() error = %v, want nil", err)
		}
		if len(got) != 2 {
			t.Errorf("len(List()) = %d, want 2", len(got))
		}
	})

	t.Run("propagates client error", func(t *testing.T) {
		t.Parallel()
		client := mocks.NewMockResourceClient(t)
		svc := NewResourceService(client, discardLogger())

		client.EXPECT().List(mock.Anything, "campanhas", 0, 10).Return(nil, domain.ErrUnavailable).Once()

		_, err := svc.List(context.Background(), resource.Campaigns, 0, 10)
		if !errors.Is(err, domain.ErrUnavailable) {
			t.Errorf("List() error = %v, want ErrUnavailable", err)
		}
	})
}

func TestResourceService_Get(t *testing.T) {
	t.Parallel()

	client := mocks.NewMockResourceClient(t)
	svc := NewResourceService(client, discardLogger())

	client.EXPECT().Get(mock.Anything, "relatos", int64(4)).Return(nil, domain.ErrNotFound).Once()

	if _, err := svc.Get(context.Background(), resource.Reports, 4); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Get() error = %v, want ErrNotFound", err)
	}
}

func TestResourceService_Writes(t *testing.T) {
	t.Parallel()

	payload := form.Payload{"nomeArea": "Encosta"}

	client := mocks.NewMockResourceClient(t)
	svc := NewResourceService(client, discardLogger())
	ctx := context.Background()

	client.EXPECT().Create(mock.Anything, "areas-de-risco", payload).Return(domain.Record{"idAreaRisco": 3}, nil).Once()
	client.EXPECT().Update(mock.Anything, "areas-de-risco", int64(3), payload).Return(domain.Record{}, nil).Once()
	client.EXPECT().Delete(mock.Anything, "areas-de-risco", int64(3)).Return(nil).Once()

	if _, err := svc.Create(ctx, resource.RiskAreas, payload); err != nil {
		t.Errorf("Create() error = %v", err)
	}
	if _, err := svc.Update(ctx, resource.RiskAreas, 3, payload); err != nil {
		t.Errorf("Update() error = %v", err)
	}
	if err := svc.Delete(ctx, resource.RiskAreas, 3); err != nil {
		t.Errorf("Delete() error = %v", err)
	}
}

func TestResourceService_ReadOnlyResource(t *testing.T) {
	t.Parallel()

	// No expectations: any client call fails the test.
	client := mocks.NewMockResourceClient(t)
	svc := NewResourceService(client, discardLogger())
	ctx := context.Background()

	_, createErr := svc.Create(ctx, resource.Campaigns, form.Payload{})
	_, updateErr := svc.Update(ctx, resource.Campaigns, 1, form.Payload{})
	deleteErr := svc.Delete(ctx, resource.Campaigns, 1)

	for name, err := range map[string]error{"Create": createErr, "Update": updateErr, "Delete": deleteErr} {
		if !errors.Is(err, domain.ErrReadOnly) {
			t.Errorf("%s() error = %v, want ErrReadOnly", name, err)
		}
	}
}
