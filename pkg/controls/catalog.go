package controls

// Catalog enumerates the controls a capture device exposes. A catalog is
// read-only; the script compiler derives its name lookup from it once.
type Catalog interface {
	// Controls returns the identifiers of every control the device supports.
	Controls() []*ID
}

// StaticCatalog is a fixed list of control identifiers.
type StaticCatalog []*ID

// Controls implements Catalog.
func (c StaticCatalog) Controls() []*ID { return c }

// DefaultCatalog returns the control catalog of a typical camera pipeline.
// It stands in when no real device is attached, for validation and simulated
// sessions.
func DefaultCatalog() Catalog {
	return StaticCatalog{
		NewID(1, "AeEnable", TypeBool),
		NewID(2, "ExposureTime", TypeInt32),
		NewID(3, "AnalogueGain", TypeFloat),
		NewID(4, "Brightness", TypeFloat),
		NewID(5, "Contrast", TypeFloat),
		NewID(6, "AwbEnable", TypeBool),
		NewID(7, "Saturation", TypeFloat),
		NewID(8, "Sharpness", TypeFloat),
		NewID(9, "FrameDuration", TypeInt64),
		NewID(10, "ScalerCrop", TypeRectangle),
		NewID(11, "TestPatternMode", TypeByte),
		NewID(12, "CameraMode", TypeString),
	}
}
