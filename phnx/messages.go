package phnx

import (
	candefs "github.com/ISC-Project-Phoenix/phnx-candefs"
)

// Kind identifies a Phoenix message type.
type Kind uint8

const (
	KindAutonDisable Kind = iota
	KindSetBrake
	KindLockBrake
	KindUnlockBrake
	KindSetAngle
	KindGetAngle
	KindSetSpeed
	KindEncoderCount
	KindTrainingMode
)

func (k Kind) String() string {
	if d, ok := descriptors[k]; ok {
		return d.Name
	}
	return "Unknown"
}

// AutonDisable tells the interface board to stop relaying drive commands from
// ROS onto the bus; the PC then transitions to teleop. There is no matching
// enable message, autonomy is re-armed with a physical switch.
type AutonDisable struct{}

func (AutonDisable) Kind() Kind      { return KindAutonDisable }
func (AutonDisable) phoenixMessage() {}

func (m AutonDisable) MarshalCANFrame() (candefs.Frame, error) {
	return newFrame(Describe(KindAutonDisable)), nil
}

func (m *AutonDisable) UnmarshalCANFrame(f candefs.Frame) error {
	return checkFrame(Describe(KindAutonDisable), f)
}

// SetBrake engages the brake to a percent of full travel.
type SetBrake struct {
	Percent uint8
}

func (SetBrake) Kind() Kind      { return KindSetBrake }
func (SetBrake) phoenixMessage() {}

func (m SetBrake) MarshalCANFrame() (candefs.Frame, error) {
	d := Describe(KindSetBrake)
	f := newFrame(d)
	if err := d.Signals[0].Pack(&f.Data, int64(m.Percent)); err != nil {
		return candefs.Frame{}, err
	}
	return f, nil
}

func (m *SetBrake) UnmarshalCANFrame(f candefs.Frame) error {
	d := Describe(KindSetBrake)
	if err := checkFrame(d, f); err != nil {
		return err
	}
	m.Percent = uint8(d.Signals[0].Unpack(f.Data))
	return nil
}

// LockBrake prevents further braking messages from reaching the bus.
type LockBrake struct{}

func (LockBrake) Kind() Kind      { return KindLockBrake }
func (LockBrake) phoenixMessage() {}

func (m LockBrake) MarshalCANFrame() (candefs.Frame, error) {
	return newFrame(Describe(KindLockBrake)), nil
}

func (m *LockBrake) UnmarshalCANFrame(f candefs.Frame) error {
	return checkFrame(Describe(KindLockBrake), f)
}

// UnlockBrake lets braking messages flow again after a LockBrake.
type UnlockBrake struct{}

func (UnlockBrake) Kind() Kind      { return KindUnlockBrake }
func (UnlockBrake) phoenixMessage() {}

func (m UnlockBrake) MarshalCANFrame() (candefs.Frame, error) {
	return newFrame(Describe(KindUnlockBrake)), nil
}

func (m *UnlockBrake) UnmarshalCANFrame(f candefs.Frame) error {
	return checkFrame(Describe(KindUnlockBrake), f)
}

// SetAngle commands the steering motor to an absolute angle and holds it.
type SetAngle struct {
	// Degrees; negative is left, positive is right.
	Angle float64
}

func (SetAngle) Kind() Kind      { return KindSetAngle }
func (SetAngle) phoenixMessage() {}

func (m SetAngle) MarshalCANFrame() (candefs.Frame, error) {
	d := Describe(KindSetAngle)
	f := newFrame(d)
	if err := d.Signals[0].PackPhysical(&f.Data, m.Angle); err != nil {
		return candefs.Frame{}, err
	}
	return f, nil
}

func (m *SetAngle) UnmarshalCANFrame(f candefs.Frame) error {
	d := Describe(KindSetAngle)
	if err := checkFrame(d, f); err != nil {
		return err
	}
	m.Angle = d.Signals[0].UnpackPhysical(f.Data)
	return nil
}

// GetAngle reports the current steering column angle.
type GetAngle struct {
	// Degrees; negative is left, positive is right.
	Angle float64
}

func (GetAngle) Kind() Kind      { return KindGetAngle }
func (GetAngle) phoenixMessage() {}

// AckermannAngle converts the steering column angle to the equivalent
// ackermann wheel angle.
func (m GetAngle) AckermannAngle() float64 {
	return m.Angle*2.62 - 0.832
}

func (m GetAngle) MarshalCANFrame() (candefs.Frame, error) {
	d := Describe(KindGetAngle)
	f := newFrame(d)
	if err := d.Signals[0].PackPhysical(&f.Data, m.Angle); err != nil {
		return candefs.Frame{}, err
	}
	return f, nil
}

func (m *GetAngle) UnmarshalCANFrame(f candefs.Frame) error {
	d := Describe(KindGetAngle)
	if err := checkFrame(d, f); err != nil {
		return err
	}
	m.Angle = d.Signals[0].UnpackPhysical(f.Data)
	return nil
}

// SetSpeed commands the drive motor to a percent of full speed.
type SetSpeed struct {
	Percent uint8
}

func (SetSpeed) Kind() Kind      { return KindSetSpeed }
func (SetSpeed) phoenixMessage() {}

func (m SetSpeed) MarshalCANFrame() (candefs.Frame, error) {
	d := Describe(KindSetSpeed)
	f := newFrame(d)
	if err := d.Signals[0].Pack(&f.Data, int64(m.Percent)); err != nil {
		return candefs.Frame{}, err
	}
	return f, nil
}

func (m *SetSpeed) UnmarshalCANFrame(f candefs.Frame) error {
	d := Describe(KindSetSpeed)
	if err := checkFrame(d, f); err != nil {
		return err
	}
	m.Percent = uint8(d.Signals[0].Unpack(f.Data))
	return nil
}

// EncoderCount carries encoder ticks since the previous report and the
// current velocity.
type EncoderCount struct {
	Count    int32
	Velocity float64 // m/s
}

func (EncoderCount) Kind() Kind      { return KindEncoderCount }
func (EncoderCount) phoenixMessage() {}

func (m EncoderCount) MarshalCANFrame() (candefs.Frame, error) {
	d := Describe(KindEncoderCount)
	f := newFrame(d)
	if err := d.Signals[0].Pack(&f.Data, int64(m.Count)); err != nil {
		return candefs.Frame{}, err
	}
	if err := d.Signals[1].PackPhysical(&f.Data, m.Velocity); err != nil {
		return candefs.Frame{}, err
	}
	return f, nil
}

func (m *EncoderCount) UnmarshalCANFrame(f candefs.Frame) error {
	d := Describe(KindEncoderCount)
	if err := checkFrame(d, f); err != nil {
		return err
	}
	m.Count = int32(d.Signals[0].Unpack(f.Data))
	m.Velocity = d.Signals[1].UnpackPhysical(f.Data)
	return nil
}

// TrainingMode engages training mode bus-wide: nodes that can relay data for
// collection begin doing so. There is no exit message; training mode ends
// when the bus is power cycled.
type TrainingMode struct{}

func (TrainingMode) Kind() Kind      { return KindTrainingMode }
func (TrainingMode) phoenixMessage() {}

func (m TrainingMode) MarshalCANFrame() (candefs.Frame, error) {
	return newFrame(Describe(KindTrainingMode)), nil
}

func (m *TrainingMode) UnmarshalCANFrame(f candefs.Frame) error {
	return checkFrame(Describe(KindTrainingMode), f)
}
