package protocol

// NewWelcomeMessage creates the handshake message for a new viewer.
func NewWelcomeMessage(data WelcomeData) (*Message, error) {
	return NewMessage(TypeWelcome, data)
}

// NewSceneMessage wraps a scene snapshot.
func NewSceneMessage(data SceneData) (*Message, error) {
	return NewMessage(TypeScene, data)
}

// GetSceneData extracts the scene snapshot from a message.
func (m *Message) GetSceneData() (*SceneData, error) {
	var data SceneData
	if err := m.ParseData(&data); err != nil {
		return nil, err
	}
	return &data, nil
}

// GetWelcomeData extracts the handshake payload from a message.
func (m *Message) GetWelcomeData() (*WelcomeData, error) {
	var data WelcomeData
	if err := m.ParseData(&data); err != nil {
		return nil, err
	}
	return &data, nil
}
