package dto

type Filter struct {
	Q string `query:"q"`
}
