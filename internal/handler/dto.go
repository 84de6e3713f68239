package handler

import "tomorrownews/internal/model"

type PredictRequest struct {
	Elements []model.NewsElement `json:"elements"`
}

type PredictFromURLRequest struct {
	URL string `json:"url"`
}

type ArticleMeta struct {
	Title       string `json:"title"`
	Source      string `json:"source"`
	Description string `json:"description"`
}

type PredictFromURLResponse struct {
	model.Prediction
	Article ArticleMeta `json:"article"`
}

type PopulateRequest struct {
	Count int `json:"count"`
}

type PopulateResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Generated int    `json:"generated"`
	Skipped   int    `json:"skipped"`
	Errors    int    `json:"errors"`
	Total     int    `json:"total"`
}

type CleanupResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Deleted int64  `json:"deleted"`
}
