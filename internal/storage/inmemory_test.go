package storage

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type inMemorySuite struct {
	suite.Suite
	storage *InMemoryStorage[string, int]
}

func TestInMemorySuite(t *testing.T) {
	suite.Run(t, new(inMemorySuite))
}

func (s *inMemorySuite) SetupTest() {
	s.storage = NewInMemoryStorage[string, int]()
}

func (s *inMemorySuite) TestGet_Set() {
	_, ok := s.storage.Get("a")
	s.False(ok)

	s.storage.Set("a", 1)
	s.storage.Set("a", 2)

	v, ok := s.storage.Get("a")
	s.True(ok)
	s.Equal(2, v)
	s.Equal(1, s.storage.Len())
}

func (s *inMemorySuite) TestDelete() {
	s.storage.Set("a", 1)

	s.True(s.storage.Delete("a"))
	s.False(s.storage.Delete("a"))
	s.Equal(0, s.storage.Len())
}

func (s *inMemorySuite) TestGetAll_Sorted() {
	s.storage.Set("c", 3)
	s.storage.Set("a", 1)
	s.storage.Set("b", 2)

	s.Equal([]string{"a", "b", "c"}, s.storage.Keys())
	s.Equal([]Pair[string, int]{
		{Key: "a", Value: 1},
		{Key: "b", Value: 2},
		{Key: "c", Value: 3},
	}, s.storage.GetAll())
}

func (s *inMemorySuite) TestEmpty() {
	s.Empty(s.storage.Keys())
	s.Empty(s.storage.GetAll())
}
