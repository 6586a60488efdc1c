package parameter

// Character Movement
const (
	CharacterWalkSpeed = 30.0
	CharacterJumpForce = 8.0
	CharacterTurnSpeed = 4.0
)

// Car Driving
const (
	CarAcceleration = 40.0
	CarSteering     = 3.0

	// CarSteeringFloor keeps some steering authority at rest
	CarSteeringFloor = 0.2
	// CarSteeringSaturation is the speed at which steering reaches full authority
	CarSteeringSaturation = 10.0

	CarHandbrakeMultiplier = 2.0
)

// Airplane Flight
const (
	AirplaneThrust          = 50.0
	AirplaneLiftCoefficient = 0.8
	AirplaneDragCoefficient = 0.02

	AirplanePitchSensitivity = 3.0
	AirplaneYawSensitivity   = 1.5
	AirplaneRollSensitivity  = 4.0

	// AirplaneLiftSpeedEpsilon is the speed below which lift degenerates to
	// pure vertical
	AirplaneLiftSpeedEpsilon = 0.01
)

// Animal Wander
const (
	AnimalSpeed = 10.0
	// AnimalDirectionChangeInterval is seconds between heading re-rolls
	AnimalDirectionChangeInterval = 3.0
)

// Flutter Flight
const (
	FlutterFrequency    = 4.0
	FlutterAmplitude    = 6.0
	FlutterTargetHeight = 5.0
	// FlutterHeightGain is the proportional correction toward target height
	FlutterHeightGain = 2.0
	FlutterWanderForce = 2.0
	// FlutterWanderTurnRate is radians per second of horizontal wander rotation
	FlutterWanderTurnRate = 0.5
)
