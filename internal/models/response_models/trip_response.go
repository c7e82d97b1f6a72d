package response_models

import "journi/internal/models/domain_models"

type RewriteDescriptionResponse struct {
	Text string `json:"text"`
}

type TripListResponse struct {
	Items    []domain_models.Trip `json:"items"`
	Total    int64                `json:"total"`
	Page     int                  `json:"page"`
	PageSize int                  `json:"pageSize"`
}

type SnapshotListResponse struct {
	Items []domain_models.ChatSnapshot `json:"items"`
}
