package dto

type SymbolQuery struct {
	Category string `query:"category" validate:"omitempty,oneof=forex metals crypto indices stocks commodities"`
}
