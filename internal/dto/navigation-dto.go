package dto

// NavNodeDTO - узел меню в JSON. Поля заполняются в зависимости от kind.
type NavNodeDTO struct {
	Kind  string       `json:"kind"`
	Key   string       `json:"key,omitempty"`
	Path  string       `json:"path,omitempty"`
	Title string       `json:"title"`
	Icon  string       `json:"icon,omitempty"`
	Items []NavNodeDTO `json:"items,omitempty"`
}

type PageDTO struct {
	Path    string            `json:"path"`
	Pattern string            `json:"pattern"`
	Title   string            `json:"title"`
	Params  map[string]string `json:"params,omitempty"`
}
