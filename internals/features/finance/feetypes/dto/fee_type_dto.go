// file: internals/features/finance/feetypes/dto/fee_type_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "admissionku_backend/internals/features/finance/feetypes/model"
)

// Response
type FeeTypeResponse struct {
	FeeTypeID             uuid.UUID `json:"fee_type_id"`
	FeeTypeName           string    `json:"fee_type_name"`
	FeeTypeDefaultAmount  int       `json:"fee_type_default_amount"`
	FeeTypeIsDiscountable bool      `json:"fee_type_is_discountable"`
	FeeTypeIsActive       bool      `json:"fee_type_is_active"`
	FeeTypeCreatedAt      time.Time `json:"fee_type_created_at"`
}

func ToFeeTypeResponse(m model.FeeType) FeeTypeResponse {
	return FeeTypeResponse{
		FeeTypeID:             m.FeeTypeID,
		FeeTypeName:           m.FeeTypeName,
		FeeTypeDefaultAmount:  m.FeeTypeDefaultAmount,
		FeeTypeIsDiscountable: m.FeeTypeIsDiscountable,
		FeeTypeIsActive:       m.FeeTypeIsActive,
		FeeTypeCreatedAt:      m.FeeTypeCreatedAt,
	}
}

func ToFeeTypeResponses(list []model.FeeType) []FeeTypeResponse {
	out := make([]FeeTypeResponse, 0, len(list))
	for _, v := range list {
		out = append(out, ToFeeTypeResponse(v))
	}
	return out
}
