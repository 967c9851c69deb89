package auth

// MockStore is an in-memory auth store for testing.
type MockStore struct {
	tokens map[string]string
	err    error
}

func NewMockStore() *MockStore {
	return &MockStore{tokens: make(map[string]string)}
}

// FailWith makes every subsequent call return err.
func (m *MockStore) FailWith(err error) { m.err = err }

func (m *MockStore) SetToken(account string, token string) error {
	if m.err != nil {
		return m.err
	}
	m.tokens[NormalizeAccount(account)] = token
	return nil
}

func (m *MockStore) GetToken(account string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	token, ok := m.tokens[NormalizeAccount(account)]
	if !ok {
		return "", ErrTokenNotFound
	}
	return token, nil
}

func (m *MockStore) DeleteToken(account string) error {
	if m.err != nil {
		return m.err
	}
	key := NormalizeAccount(account)
	if _, ok := m.tokens[key]; !ok {
		return ErrTokenNotFound
	}
	delete(m.tokens, key)
	return nil
}
