package data

import (
	"log"
	"time"

	"restaurant-saas-api/docstore"
	"restaurant-saas-api/models"
)

// Orders returns every order of the tenant.
func (s *Service) Orders(tenantID string) ([]models.Order, error) {
	docs, err := s.store.List(docstore.TenantPath(tenantID, docstore.CollectionOrders))
	if err != nil {
		return nil, err
	}
	return decodeOrders(docs)
}

// AddOrder inserts a new order. The caller never controls createdAt or the
// initial status: both are stamped here, and every order starts as "new".
func (s *Service) AddOrder(tenantID string, order models.Order) (string, error) {
	order.CreatedAt = time.Now().Format(time.RFC3339)
	order.Status = models.OrderStatusNew
	body, err := docBody(order)
	if err != nil {
		return "", err
	}
	return s.store.Create(docstore.TenantPath(tenantID, docstore.CollectionOrders), body)
}

// Order returns one order, or docstore.ErrNotFound.
func (s *Service) Order(tenantID, id string) (models.Order, error) {
	doc, err := s.store.Get(docstore.TenantPath(tenantID, docstore.CollectionOrders), id)
	if err != nil {
		return models.Order{}, err
	}
	var order models.Order
	if err := decodeDoc(doc, &order); err != nil {
		return models.Order{}, err
	}
	return order, nil
}

// UpdateOrderStatus patches only the status field.
func (s *Service) UpdateOrderStatus(tenantID, id string, status models.OrderStatus) error {
	return s.store.Patch(docstore.TenantPath(tenantID, docstore.CollectionOrders), id, map[string]interface{}{
		"status": string(status),
	})
}

// SubscribeOrders delivers the full order list on every change.
func (s *Service) SubscribeOrders(tenantID string, fn func([]models.Order)) (func(), error) {
	return s.store.Subscribe(docstore.TenantPath(tenantID, docstore.CollectionOrders), func(docs []docstore.Document) {
		orders, err := decodeOrders(docs)
		if err != nil {
			log.Printf("order snapshot for tenant %s: %v", tenantID, err)
			return
		}
		fn(orders)
	})
}

func decodeOrders(docs []docstore.Document) ([]models.Order, error) {
	orders := make([]models.Order, 0, len(docs))
	for _, doc := range docs {
		var order models.Order
		if err := decodeDoc(doc, &order); err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, nil
}
