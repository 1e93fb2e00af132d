package dto

type RouteAccessDTO struct {
	Path           string   `json:"path"`
	Pattern        string   `json:"pattern"`
	Required       []string `json:"required"`
	Classification string   `json:"classification"`
	Allowed        bool     `json:"allowed"`
}

type EvaluateAccessDTO struct {
	Required []string `json:"required" validate:"omitempty,dive,required"`
	Mode     string   `json:"mode" validate:"omitempty,oneof=any all"`
}

type EvaluateResultDTO struct {
	Allowed bool `json:"allowed"`
}

// UnauthorizedDTO - тело ответа guard для JSON-клиентов и страницы /unauthorized.
type UnauthorizedDTO struct {
	RedirectTo string `json:"redirect_to,omitempty"`
	From       string `json:"from"`
}
