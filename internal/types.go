package internal

type StudentRecord struct {
	SNo     int     `json:"sno"`
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Company string  `json:"company"`
	Salary  float64 `json:"salary"`
	Photo   string  `json:"photo"`
	Logo    string  `json:"logo"`
}

type Document struct {
	Students []StudentRecord `json:"students"`
	Total    int             `json:"total"`
}

type RunSummary struct {
	ID         int
	TraceID    string
	InputPath  string
	Total      int
	WithPhotos int
	WithLogos  int
	TotalMs    float64
	CreatedAt  string
}
