package messages

// ObjectUpdate carries one object's packed state. Data holds the full
// section (when Full is set) followed by the partial section, both as
// MSB-first bit fields.
type ObjectUpdate struct {
	ID       uint16
	Category uint8
	Type     uint16
	Full     bool
	Data     []byte
}

// ObjectUpdateBatch is everything the server changed in one tick. Deleted
// objects are removed after the updates are applied.
type ObjectUpdateBatch struct {
	Tick     uint32
	Protocol uint8
	Updates  []ObjectUpdate
	Deleted  []uint16
}
