package filter

// Filter sets for every listing endpoint

var Boards = FilterSet{
	Ordering: map[string]string{
		"title":   "boards.title",
		"created": "boards.created_at",
	},
	Default: []string{"title"},
}

var Categories = FilterSet{
	Fields: map[string]Field{
		"board": {Column: "goal_categories.board_id", Operators: []Operator{OpExact, OpIn}, Parse: UUID},
	},
	Search: []string{"goal_categories.title"},
	Ordering: map[string]string{
		"title":   "goal_categories.title",
		"created": "goal_categories.created_at",
	},
	Default: []string{"title"},
}

var Goals = FilterSet{
	Fields: map[string]Field{
		"due_date": {Column: "goals.due_date", Operators: []Operator{OpGte, OpLte}, Parse: Timestamp},
		"category": {Column: "goals.category_id", Operators: []Operator{OpExact, OpIn}, Parse: UUID},
		"status":   {Column: "goals.status", Operators: []Operator{OpExact, OpIn}, Parse: Status},
		"priority": {Column: "goals.priority", Operators: []Operator{OpExact, OpIn}, Parse: Priority},
	},
	Search: []string{"goals.title", "goals.description"},
	Ordering: map[string]string{
		"title":    "goals.title",
		"created":  "goals.created_at",
		"priority": "goals.priority",
		"status":   "goals.status",
		"due_date": "goals.due_date",
	},
	Default: []string{"title"},
}

var Comments = FilterSet{
	Fields: map[string]Field{
		"goal": {Column: "comments.goal_id", Operators: []Operator{OpExact, OpIn}, Parse: UUID},
	},
	Ordering: map[string]string{
		"created": "comments.created_at",
	},
	Default: []string{"-created"},
}
