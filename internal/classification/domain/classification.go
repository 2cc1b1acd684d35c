package domain

import "time"

// Known labels the prompt asks for. Not enforced on storage.
const (
	LabelProductive   = "Produtivo"
	LabelUnproductive = "Improdutivo"
)

// Classification is one stored outcome of a classify request. Records are append-only.
type Classification struct {
	ID                uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	EmailText         string    `json:"emailText" gorm:"type:text;not null"`
	Classification    string    `json:"classification" gorm:"size:64;not null"`
	SuggestedResponse string    `json:"suggestedResponse" gorm:"type:text;not null"`
	CreatedAt         time.Time `json:"createdAt" gorm:"index"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// TableName specifies the table name for GORM
func (Classification) TableName() string {
	return "classifications"
}

// IsKnownLabel reports whether label is one of the two categories the prompt requests.
func IsKnownLabel(label string) bool {
	return label == LabelProductive || label == LabelUnproductive
}
