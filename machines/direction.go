package machines

import "fmt"

// Direction is a head movement, mapped one-to-one to a token of the
// machine text format.
type Direction uint8

const (
	MoveLeft Direction = iota
	MoveRight
	Stay
)

const (
	tokenLeft  = "<"
	tokenRight = ">"
	tokenStay  = "-"
)

func ParseDirection(token string) (Direction, error) {
	switch token {
	case tokenLeft:
		return MoveLeft, nil
	case tokenRight:
		return MoveRight, nil
	case tokenStay:
		return Stay, nil
	}
	return 0, fmt.Errorf("invalid direction: %s", token)
}

func (d Direction) String() string {
	switch d {
	case MoveLeft:
		return tokenLeft
	case MoveRight:
		return tokenRight
	case Stay:
		return tokenStay
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}
