package data

import (
	"log"
	"time"

	"restaurant-saas-api/docstore"
	"restaurant-saas-api/models"
)

// Feedback is append-only: there is deliberately no update or delete here.

// Feedbacks returns every feedback entry of the tenant.
func (s *Service) Feedbacks(tenantID string) ([]models.Feedback, error) {
	docs, err := s.store.List(docstore.TenantPath(tenantID, docstore.CollectionFeedbacks))
	if err != nil {
		return nil, err
	}
	return decodeFeedbacks(docs)
}

// AddFeedback inserts a feedback entry, stamping createdAt.
func (s *Service) AddFeedback(tenantID string, feedback models.Feedback) (string, error) {
	feedback.CreatedAt = time.Now().Format(time.RFC3339)
	body, err := docBody(feedback)
	if err != nil {
		return "", err
	}
	return s.store.Create(docstore.TenantPath(tenantID, docstore.CollectionFeedbacks), body)
}

// SubscribeFeedbacks delivers the full feedback list on every change.
func (s *Service) SubscribeFeedbacks(tenantID string, fn func([]models.Feedback)) (func(), error) {
	return s.store.Subscribe(docstore.TenantPath(tenantID, docstore.CollectionFeedbacks), func(docs []docstore.Document) {
		feedbacks, err := decodeFeedbacks(docs)
		if err != nil {
			log.Printf("feedback snapshot for tenant %s: %v", tenantID, err)
			return
		}
		fn(feedbacks)
	})
}

func decodeFeedbacks(docs []docstore.Document) ([]models.Feedback, error) {
	feedbacks := make([]models.Feedback, 0, len(docs))
	for _, doc := range docs {
		var feedback models.Feedback
		if err := decodeDoc(doc, &feedback); err != nil {
			return nil, err
		}
		feedbacks = append(feedbacks, feedback)
	}
	return feedbacks, nil
}
