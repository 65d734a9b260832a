package component

// CameraMode — режим камеры.
type CameraMode int

const (
	CameraIdle CameraMode = iota
	CameraSliding
	CameraFollowing
)

func (m CameraMode) String() string {
	switch m {
	case CameraSliding:
		return "sliding"
	case CameraFollowing:
		return "following"
	}
	return "idle"
}
