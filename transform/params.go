package transform

import (
	"github.com/lixenwraith/kinema/parameter"
)

// Variant parameter structs. Defaults come from the parameter package;
// scene configs and GameAPI calls merge partial updates by snake_case name
// through set().

// CharacterParams tunes the walking variant.
type CharacterParams struct {
	WalkSpeed float64 // force per unit of move action
	JumpForce float64 // impulse per unit of jump action
	TurnSpeed float64 // yaw torque per unit of turn action
}

func defaultCharacterParams() CharacterParams {
	return CharacterParams{
		WalkSpeed: parameter.CharacterWalkSpeed,
		JumpForce: parameter.CharacterJumpForce,
		TurnSpeed: parameter.CharacterTurnSpeed,
	}
}

func (p *CharacterParams) set(name string, v float64) bool {
	switch name {
	case "walk_speed":
		p.WalkSpeed = v
	case "jump_force":
		p.JumpForce = v
	case "turn_speed":
		p.TurnSpeed = v
	default:
		return false
	}
	return true
}

// CarParams tunes the driving variant.
type CarParams struct {
	Acceleration        float64 // forward force per unit of throttle
	Steering            float64 // yaw torque at full authority
	HandbrakeMultiplier float64
}

func defaultCarParams() CarParams {
	return CarParams{
		Acceleration:        parameter.CarAcceleration,
		Steering:            parameter.CarSteering,
		HandbrakeMultiplier: parameter.CarHandbrakeMultiplier,
	}
}

func (p *CarParams) set(name string, v float64) bool {
	switch name {
	case "acceleration":
		p.Acceleration = v
	case "steering":
		p.Steering = v
	case "handbrake_multiplier":
		p.HandbrakeMultiplier = v
	default:
		return false
	}
	return true
}

// AirplaneParams tunes the flight variant.
type AirplaneParams struct {
	Thrust           float64
	LiftCoefficient  float64 // lift magnitude per unit speed
	DragCoefficient  float64 // drag magnitude per unit speed squared
	PitchSensitivity float64
	YawSensitivity   float64
	RollSensitivity  float64
}

func defaultAirplaneParams() AirplaneParams {
	return AirplaneParams{
		Thrust:           parameter.AirplaneThrust,
		LiftCoefficient:  parameter.AirplaneLiftCoefficient,
		DragCoefficient:  parameter.AirplaneDragCoefficient,
		PitchSensitivity: parameter.AirplanePitchSensitivity,
		YawSensitivity:   parameter.AirplaneYawSensitivity,
		RollSensitivity:  parameter.AirplaneRollSensitivity,
	}
}

func (p *AirplaneParams) set(name string, v float64) bool {
	switch name {
	case "thrust":
		p.Thrust = v
	case "lift_coefficient":
		p.LiftCoefficient = v
	case "drag_coefficient":
		p.DragCoefficient = v
	case "pitch_sensitivity":
		p.PitchSensitivity = v
	case "yaw_sensitivity":
		p.YawSensitivity = v
	case "roll_sensitivity":
		p.RollSensitivity = v
	default:
		return false
	}
	return true
}

// AnimalParams tunes the wander variant.
type AnimalParams struct {
	Speed                   float64
	DirectionChangeInterval float64 // seconds between heading re-rolls
}

func defaultAnimalParams() AnimalParams {
	return AnimalParams{
		Speed:                   parameter.AnimalSpeed,
		DirectionChangeInterval: parameter.AnimalDirectionChangeInterval,
	}
}

func (p *AnimalParams) set(name string, v float64) bool {
	switch name {
	case "speed":
		p.Speed = v
	case "direction_change_interval":
		p.DirectionChangeInterval = v
	default:
		return false
	}
	return true
}

// FlutterParams tunes the oscillating-flight variant.
type FlutterParams struct {
	Frequency    float64 // vertical oscillation, radians/sec
	Amplitude    float64 // vertical force swing
	TargetHeight float64
	HeightGain   float64 // proportional correction toward target height
	WanderForce  float64
	WanderTurn   float64 // horizontal wander rotation, radians/sec
}

func defaultFlutterParams() FlutterParams {
	return FlutterParams{
		Frequency:    parameter.FlutterFrequency,
		Amplitude:    parameter.FlutterAmplitude,
		TargetHeight: parameter.FlutterTargetHeight,
		HeightGain:   parameter.FlutterHeightGain,
		WanderForce:  parameter.FlutterWanderForce,
		WanderTurn:   parameter.FlutterWanderTurnRate,
	}
}

func (p *FlutterParams) set(name string, v float64) bool {
	switch name {
	case "frequency":
		p.Frequency = v
	case "amplitude":
		p.Amplitude = v
	case "target_height":
		p.TargetHeight = v
	case "height_gain":
		p.HeightGain = v
	case "wander_force":
		p.WanderForce = v
	case "wander_turn_rate":
		p.WanderTurn = v
	default:
		return false
	}
	return true
}
