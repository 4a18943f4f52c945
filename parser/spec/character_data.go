package spec

// CharacterData is the payload of text, comment and processing instruction
// nodes. Target is only used by processing instructions.
// https://dom.spec.whatwg.org/#characterdata
type CharacterData struct {
	Data   string
	Length int
	Target string
}

func NewCharacterData(data string) *CharacterData {
	return &CharacterData{
		Data:   data,
		Length: len(data),
	}
}

// SetData replaces the node's data.
func (c *CharacterData) SetData(data string) {
	c.Data = data
	c.Length = len(data)
}

func (c *CharacterData) AppendData(data string) {
	c.SetData(c.Data + data)
}
