package cable

import "github.com/younwookim/wiretown/internal/domain/entity"

// Zones are the nested grading areas of the bar. Green lies inside yellow,
// yellow inside orange.
type Zones struct {
	Orange entity.Rect
	Yellow entity.Rect
	Green  entity.Rect
}

// Grade returns the quality of a crimp given the cursor hitbox
func Grade(cursor entity.Rect, z Zones) entity.Quality {
	orange := cursor.Overlaps(z.Orange)
	yellow := cursor.Overlaps(z.Yellow)
	green := cursor.Overlaps(z.Green)

	switch {
	case orange && yellow && green:
		return entity.QualityGreen
	case orange && yellow:
		return entity.QualityYellow
	case orange:
		return entity.QualityOrange
	default:
		return entity.QualityNone
	}
}

// Default money granted per quality when the definition sets none
var defaultRewards = map[entity.Quality]int{
	entity.QualityGreen:  10,
	entity.QualityYellow: 5,
	entity.QualityOrange: 2,
}
