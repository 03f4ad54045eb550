package repository

import (
	"fmt"

	reservationModel "hotel/internal/domains/reservation/model"
	"hotel/internal/domains/room/model"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"

	"github.com/shopspring/decimal"
)

const (
	argRoomStatus  = "room_status"
	argMinCapacity = "min_capacity"
	argRoomTypeID  = "search_room_type_id"
	argMaxPrice    = "max_price"
)

// AvailabilityCriteria narrows an availability search. Zero values disable a criterion.
type AvailabilityCriteria struct {
	MinCapacity int
	RoomTypeID  int64
	MaxPrice    *decimal.Decimal
}

// AvailableFilter matches bookable rooms that have no conflicting reservation for the stay.
func AvailableFilter(stay reservationModel.DateRange, criteria AvailabilityCriteria) gDto.FilterGroup {
	noConflict := fmt.Sprintf("NOT EXISTS (SELECT 1 FROM %[1]s WHERE %[1]s.%[2]s = %[3]s.%[4]s AND %[5]s)",
		reservationModel.TableName, reservationModel.FieldRoomID, model.TableName, model.FieldID,
		reservationModel.ConflictPredicate(reservationModel.TableName))

	filters := []any{
		gDto.Filter{
			ArgName:  argRoomStatus,
			Field:    model.FieldStatus,
			Value:    model.StatusAvailable,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		},
		gDto.Filter{
			Field:    constant.FieldDeletedAt,
			Operator: gDto.FilterIsNull,
			Table:    model.TableName,
		},
		gDto.Filter{
			Value:    noConflict,
			Operator: gDto.FilterPlainQuery,
			Args:     stay.ConflictArgs(),
		},
	}

	if criteria.MinCapacity > 0 {
		filters = append(filters, gDto.Filter{
			ArgName:  argMinCapacity,
			Field:    model.FieldCapacity,
			Value:    criteria.MinCapacity,
			Operator: gDto.FilterOperatorGreaterEq,
			Table:    model.RoomTypeTableName,
		})
	}

	if criteria.RoomTypeID > 0 {
		filters = append(filters, gDto.Filter{
			ArgName:  argRoomTypeID,
			Field:    model.FieldRoomTypeID,
			Value:    criteria.RoomTypeID,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		})
	}

	if criteria.MaxPrice != nil {
		filters = append(filters, gDto.Filter{
			ArgName:  argMaxPrice,
			Field:    model.FieldBasePrice,
			Value:    *criteria.MaxPrice,
			Operator: gDto.FilterOperatorLessEq,
			Table:    model.RoomTypeTableName,
		})
	}

	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  filters,
	}
}

// KeywordFilter matches active rooms whose number, type name or description contains term.
// It never looks at reservations.
func KeywordFilter(term string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    constant.FieldDeletedAt,
				Operator: gDto.FilterIsNull,
				Table:    model.TableName,
			},
			gDto.FilterGroup{
				Operator: gDto.FilterGroupOperatorOr,
				Filters: []any{
					gDto.Filter{
						ArgName:  "term_room_number",
						Field:    model.FieldRoomNumber,
						Value:    term,
						Operator: gDto.FilterOperatorLike,
						Table:    model.TableName,
					},
					gDto.Filter{
						ArgName:  "term_type_name",
						Field:    model.FieldTypeName,
						Value:    term,
						Operator: gDto.FilterOperatorLike,
						Table:    model.RoomTypeTableName,
					},
					gDto.Filter{
						ArgName:  "term_description",
						Field:    model.FieldDescription,
						Value:    term,
						Operator: gDto.FilterOperatorLike,
						Table:    model.RoomTypeTableName,
					},
				},
			},
		},
	}
}
