// Package memory holds every entity in mutex-guarded maps. It backs
// handler tests and lets the server run without a database.
package memory

import (
	"context"
	"sort"
	"sync"

	"problemsdb-backend/core"
)

type memStore struct {
	mu sync.RWMutex

	nextID int64

	problems  map[int64]*core.Problem
	concepts  map[int64]*core.Concept
	resources map[int64]*core.Resource
	courses   map[int64]*core.Course
	chapters  map[int64]*core.Chapter
	topics    map[int64]*core.Topic
	contents  map[int64]*core.Content
}

// NewStore creates a new in-memory store.
func NewStore() *memStore {
	return &memStore{
		problems:  make(map[int64]*core.Problem),
		concepts:  make(map[int64]*core.Concept),
		resources: make(map[int64]*core.Resource),
		courses:   make(map[int64]*core.Course),
		chapters:  make(map[int64]*core.Chapter),
		topics:    make(map[int64]*core.Topic),
		contents:  make(map[int64]*core.Content),
	}
}

func (s *memStore) Close() error { return nil }

// assignID hands out ids from a single sequence. Callers must hold mu.
func (s *memStore) assignID() int64 {
	s.nextID++
	return s.nextID
}

// sortedIDs returns map keys ascending so lists come back in insertion
// order, like rows read in natural storage order.
func sortedIDs[V any](m map[int64]*V) []int64 {
	ids := make([]int64, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Problems

func (s *memStore) ListProblems(ctx context.Context) ([]*core.Problem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	problems := make([]*core.Problem, 0, len(s.problems))
	for _, id := range sortedIDs(s.problems) {
		p := *s.problems[id]
		problems = append(problems, &p)
	}
	return problems, nil
}

func (s *memStore) CreateProblem(ctx context.Context, problem *core.Problem) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := *problem
	p.ID = s.assignID()
	s.problems[p.ID] = &p
	return p.ID, nil
}

func (s *memStore) UpdateProblem(ctx context.Context, problem *core.Problem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.problems[problem.ID]; !ok {
		return core.ErrNotFound
	}
	p := *problem
	s.problems[p.ID] = &p
	return nil
}

func (s *memStore) DeleteProblem(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.problems[id]; !ok {
		return core.ErrNotFound
	}
	delete(s.problems, id)
	return nil
}

// Concepts

func (s *memStore) ListConcepts(ctx context.Context) ([]*core.Concept, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	concepts := make([]*core.Concept, 0, len(s.concepts))
	for _, id := range sortedIDs(s.concepts) {
		c := *s.concepts[id]
		concepts = append(concepts, &c)
	}
	return concepts, nil
}

func (s *memStore) CreateConcept(ctx context.Context, concept *core.Concept) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := *concept
	c.ID = s.assignID()
	s.concepts[c.ID] = &c
	return c.ID, nil
}

func (s *memStore) UpdateConcept(ctx context.Context, concept *core.Concept) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.concepts[concept.ID]; !ok {
		return core.ErrNotFound
	}
	c := *concept
	s.concepts[c.ID] = &c
	return nil
}

func (s *memStore) DeleteConcept(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.concepts[id]; !ok {
		return core.ErrNotFound
	}
	delete(s.concepts, id)
	return nil
}

// Resources

func (s *memStore) ListResources(ctx context.Context) ([]*core.Resource, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	resources := make([]*core.Resource, 0, len(s.resources))
	for _, id := range sortedIDs(s.resources) {
		r := *s.resources[id]
		resources = append(resources, &r)
	}
	return resources, nil
}

func (s *memStore) CreateResource(ctx context.Context, resource *core.Resource) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := *resource
	r.ID = s.assignID()
	s.resources[r.ID] = &r
	return r.ID, nil
}

func (s *memStore) UpdateResource(ctx context.Context, resource *core.Resource) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.resources[resource.ID]; !ok {
		return core.ErrNotFound
	}
	r := *resource
	s.resources[r.ID] = &r
	return nil
}

func (s *memStore) DeleteResource(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.resources[id]; !ok {
		return core.ErrNotFound
	}
	delete(s.resources, id)
	return nil
}

// Courses

func (s *memStore) ListCourses(ctx context.Context) ([]*core.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	courses := make([]*core.Course, 0, len(s.courses))
	for _, id := range sortedIDs(s.courses) {
		c := *s.courses[id]
		courses = append(courses, &c)
	}
	return courses, nil
}

func (s *memStore) GetCourse(ctx context.Context, id int64) (*core.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	course, ok := s.courses[id]
	if !ok {
		return nil, core.ErrNotFound
	}
	c := *course
	return &c, nil
}

func (s *memStore) CreateCourse(ctx context.Context, course *core.Course) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := *course
	c.ID = s.assignID()
	s.courses[c.ID] = &c
	return c.ID, nil
}

func (s *memStore) UpdateCourse(ctx context.Context, course *core.Course) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.courses[course.ID]; !ok {
		return core.ErrNotFound
	}
	c := *course
	s.courses[c.ID] = &c
	return nil
}

func (s *memStore) DeleteCourse(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.courses[id]; !ok {
		return core.ErrNotFound
	}
	delete(s.courses, id)
	return nil
}

// Chapters

func (s *memStore) ListChapters(ctx context.Context) ([]*core.Chapter, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filterChapters(func(*core.Chapter) bool { return true }), nil
}

func (s *memStore) ListChaptersByCourse(ctx context.Context, courseID int64) ([]*core.Chapter, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filterChapters(func(c *core.Chapter) bool { return c.CourseID == courseID }), nil
}

// filterChapters copies matching chapters in id order. Callers must
// hold mu.
func (s *memStore) filterChapters(match func(*core.Chapter) bool) []*core.Chapter {
	chapters := []*core.Chapter{}
	for _, id := range sortedIDs(s.chapters) {
		if match(s.chapters[id]) {
			c := *s.chapters[id]
			chapters = append(chapters, &c)
		}
	}
	return chapters
}

func (s *memStore) CreateChapter(ctx context.Context, chapter *core.Chapter) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := *chapter
	c.ID = s.assignID()
	s.chapters[c.ID] = &c
	return c.ID, nil
}

func (s *memStore) UpdateChapter(ctx context.Context, chapter *core.Chapter) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.chapters[chapter.ID]; !ok {
		return core.ErrNotFound
	}
	c := *chapter
	s.chapters[c.ID] = &c
	return nil
}

func (s *memStore) DeleteChapter(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.chapters[id]; !ok {
		return core.ErrNotFound
	}
	delete(s.chapters, id)
	return nil
}

// Topics

func (s *memStore) ListTopics(ctx context.Context) ([]*core.Topic, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filterTopics(func(*core.Topic) bool { return true }), nil
}

func (s *memStore) ListTopicsByChapter(ctx context.Context, chapterID int64) ([]*core.Topic, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filterTopics(func(t *core.Topic) bool { return t.ChapterID == chapterID }), nil
}

func (s *memStore) filterTopics(match func(*core.Topic) bool) []*core.Topic {
	topics := []*core.Topic{}
	for _, id := range sortedIDs(s.topics) {
		if match(s.topics[id]) {
			t := *s.topics[id]
			topics = append(topics, &t)
		}
	}
	return topics
}

func (s *memStore) CreateTopic(ctx context.Context, topic *core.Topic) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := *topic
	t.ID = s.assignID()
	s.topics[t.ID] = &t
	return t.ID, nil
}

func (s *memStore) UpdateTopic(ctx context.Context, topic *core.Topic) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.topics[topic.ID]; !ok {
		return core.ErrNotFound
	}
	t := *topic
	s.topics[t.ID] = &t
	return nil
}

func (s *memStore) DeleteTopic(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.topics[id]; !ok {
		return core.ErrNotFound
	}
	delete(s.topics, id)
	return nil
}

// Contents

func (s *memStore) ListContents(ctx context.Context) ([]*core.Content, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filterContents(func(*core.Content) bool { return true }), nil
}

func (s *memStore) ListContentsByTopic(ctx context.Context, topicID int64) ([]*core.Content, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filterContents(func(c *core.Content) bool { return c.TopicID == topicID }), nil
}

func (s *memStore) filterContents(match func(*core.Content) bool) []*core.Content {
	contents := []*core.Content{}
	for _, id := range sortedIDs(s.contents) {
		if match(s.contents[id]) {
			c := *s.contents[id]
			contents = append(contents, &c)
		}
	}
	return contents
}

func (s *memStore) GetContent(ctx context.Context, id int64) (*core.Content, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	content, ok := s.contents[id]
	if !ok {
		return nil, core.ErrNotFound
	}
	c := *content
	return &c, nil
}

func (s *memStore) CreateContent(ctx context.Context, content *core.Content) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := *content
	c.ID = s.assignID()
	s.contents[c.ID] = &c
	return c.ID, nil
}

func (s *memStore) UpdateContent(ctx context.Context, content *core.Content) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.contents[content.ID]
	if !ok {
		return core.ErrNotFound
	}
	c := *content
	if c.Image == "" {
		// No replacement image uploaded; the stored filename stays.
		c.Image = existing.Image
	}
	s.contents[c.ID] = &c
	return nil
}

func (s *memStore) DeleteContent(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.contents[id]; !ok {
		return core.ErrNotFound
	}
	delete(s.contents, id)
	return nil
}
