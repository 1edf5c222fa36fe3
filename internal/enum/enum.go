package enum

// ── Order state machine ──

const (
	OrderStatusPending   = "PENDING"
	OrderStatusConfirmed = "CONFIRMED"
	OrderStatusCompleted = "COMPLETED"
)

const (
	PaymentStatusPending = "PENDING"
	PaymentStatusPartial = "PARTIAL"
	PaymentStatusPaid    = "PAID"
)

// ── Catalog axes ──

const (
	DietaryVeg    = "VEG"
	DietaryNonVeg = "NON_VEG"
)

const (
	FoodCategorySweet      = "SWEET"
	FoodCategoryTiffen     = "TIFFEN"
	FoodCategoryRiceMain   = "RICE_MAIN"
	FoodCategorySideDishes = "SIDE_DISHES"
	FoodCategorySnacks     = "SNACKS"
	FoodCategoryBeverages  = "BEVERAGES"
	FoodCategoryOthers     = "OTHERS"
)

const (
	MealTypeBreakfast = "BREAKFAST"
	MealTypeLunch     = "LUNCH"
	MealTypeDinner    = "DINNER"
	MealTypeEvent     = "EVENT"
)

// ── Additional cost types ──
// CostTypeOther requires a custom label on the cost.

const (
	CostTypeTransportation  = "TRANSPORTATION"
	CostTypeServiceStaff    = "SERVICE_STAFF"
	CostTypeEquipmentRental = "EQUIPMENT_RENTAL"
	CostTypeDecoration      = "DECORATION"
	CostTypeOther           = "OTHER"
)

// IsValidMealType reports whether s is one of the meal type constants.
func IsValidMealType(s string) bool {
	switch s {
	case MealTypeBreakfast, MealTypeLunch, MealTypeDinner, MealTypeEvent:
		return true
	}
	return false
}

// IsValidDietary reports whether s is one of the dietary constants.
func IsValidDietary(s string) bool {
	switch s {
	case DietaryVeg, DietaryNonVeg:
		return true
	}
	return false
}

// IsValidFoodCategory reports whether s is one of the food category constants.
func IsValidFoodCategory(s string) bool {
	switch s {
	case FoodCategorySweet, FoodCategoryTiffen, FoodCategoryRiceMain,
		FoodCategorySideDishes, FoodCategorySnacks, FoodCategoryBeverages,
		FoodCategoryOthers:
		return true
	}
	return false
}

// IsValidCostType reports whether s is one of the cost type constants.
func IsValidCostType(s string) bool {
	switch s {
	case CostTypeTransportation, CostTypeServiceStaff,
		CostTypeEquipmentRental, CostTypeDecoration, CostTypeOther:
		return true
	}
	return false
}

// IsValidPaymentStatus reports whether s is one of the payment status constants.
func IsValidPaymentStatus(s string) bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPartial, PaymentStatusPaid:
		return true
	}
	return false
}

// MealTypeLabel returns the printable form used on quote documents,
// e.g. "Lunch" for MealTypeLunch and "Event Feast" for MealTypeEvent.
func MealTypeLabel(s string) string {
	switch s {
	case MealTypeBreakfast:
		return "Breakfast"
	case MealTypeLunch:
		return "Lunch"
	case MealTypeDinner:
		return "Dinner"
	case MealTypeEvent:
		return "Event Feast"
	}
	return s
}

// CostTypeLabel returns the printable label for an additional cost type.
func CostTypeLabel(s string) string {
	switch s {
	case CostTypeTransportation:
		return "Transportation"
	case CostTypeServiceStaff:
		return "Service Staff"
	case CostTypeEquipmentRental:
		return "Equipment Rental"
	case CostTypeDecoration:
		return "Decoration"
	case CostTypeOther:
		return "Other"
	}
	return s
}
