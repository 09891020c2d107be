package planner

import "example.com/diet-planner/backend/internal/models"

type DayWorkout struct {
	Day      string `json:"day"`
	Exercise string `json:"exercise"`
}

// WorkoutPlan is a fixed monday..sunday schedule.
type WorkoutPlan []DayWorkout

var weekdays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

var workoutTemplates = map[models.Goal][7]string{
	models.GoalWeightLoss: {
		"Cardio - 30min brisk walk/jog + 15min bodyweight exercises",
		"Strength training - Upper body (push-ups, planks, arm exercises)",
		"Cardio - 30min cycling/dancing + stretching",
		"Strength training - Lower body (squats, lunges, calf raises)",
		"Full body HIIT - 20min high intensity + 10min cool down",
		"Active recovery - yoga/light walking",
		"Rest day",
	},
	models.GoalMuscleGain: {
		"Upper body strength - Push-ups, pull-ups, dips (3 sets x 8-12 reps)",
		"Lower body strength - Squats, lunges, deadlifts (3 sets x 8-12 reps)",
		"Cardio - 20min moderate intensity",
		"Upper body strength - Different exercises than Monday",
		"Lower body strength - Different exercises than Tuesday",
		"Full body circuit training",
		"Rest day",
	},
	models.GoalMaintenance: {
		"Cardio - 30min moderate exercise",
		"Strength training - Full body basics",
		"Flexibility/Yoga - 30min stretching routine",
		"Cardio - 30min different activity",
		"Strength training - Full body basics",
		"Active fun - sports/dancing/hiking",
		"Rest day",
	},
}

// PickWorkout выбирает недельный шаблон тренировок; по умолчанию поддержание формы.
func PickWorkout(goal models.Goal) WorkoutPlan {
	template, ok := workoutTemplates[models.ParseGoal(string(goal))]
	if !ok {
		template = workoutTemplates[models.GoalMaintenance]
	}

	plan := make(WorkoutPlan, 0, len(weekdays))
	for i, day := range weekdays {
		plan = append(plan, DayWorkout{Day: day, Exercise: template[i]})
	}
	return plan
}
