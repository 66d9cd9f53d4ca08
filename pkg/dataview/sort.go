package dataview

type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// SortState is the singleton sort of one view instance.
type SortState struct {
	Field     string    `json:"field"`
	Direction Direction `json:"direction"`
}

// SortController owns the sort state. Repeating the current field toggles the
// direction; a new field resets to ascending. Tie ordering is left to the data
// source.
type SortController struct {
	state    SortState
	onChange func(SortState)
}

func NewSortController(onChange func(SortState)) *SortController {
	return &SortController{onChange: onChange}
}

func (c *SortController) SortBy(field string) {
	if c.state.Field == field {
		if c.state.Direction == Asc {
			c.state.Direction = Desc
		} else {
			c.state.Direction = Asc
		}
	} else {
		c.state.Field = field
		c.state.Direction = Asc
	}
	if c.onChange != nil {
		c.onChange(c.state)
	}
}

func (c *SortController) State() SortState { return c.state }
