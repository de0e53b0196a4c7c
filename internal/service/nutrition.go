package service

import "fmt"

// Gender selects the BMR constant in DailyTarget.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Sedentary activity multiplier applied to the BMR.
const activityFactor = 1.2

// Profile is the caller-supplied body data for the daily target.
type Profile struct {
	AgeYears float64
	HeightCm float64
	WeightKg float64
	Gender   Gender
}

// DailyTarget computes a daily calorie target from the Mifflin-St Jeor
// basal metabolic rate (10*weight + 6.25*height - 5*age, +5 for male,
// -161 for female) scaled by the sedentary activity factor.
func DailyTarget(p Profile) (float64, error) {
	if p.AgeYears <= 0 || p.HeightCm <= 0 || p.WeightKg <= 0 {
		return 0, fmt.Errorf("age, height and weight must be positive, got age=%v height=%v weight=%v",
			p.AgeYears, p.HeightCm, p.WeightKg)
	}
	bmr := 10*p.WeightKg + 6.25*p.HeightCm - 5*p.AgeYears
	switch p.Gender {
	case GenderMale:
		bmr += 5
	case GenderFemale:
		bmr -= 161
	default:
		return 0, fmt.Errorf("unknown gender %q", p.Gender)
	}
	return bmr * activityFactor, nil
}
