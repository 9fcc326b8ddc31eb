package errors

import (
	"fmt"
	"sync"
)

const (
	majorBitSize = 7
	minorBitSize = 10
	indexBitSize = 32 - majorBitSize - minorBitSize

	maxIndexValue = (2 << (indexBitSize - 1)) - 1
	maxMinorValue = (2 << (minorBitSize - 1)) - 1
	maxMajorValue = (2 << (majorBitSize - 1)) - 1
)

// Class is the error classification model. It is composed of the major,
// minor and index subclassifications. Each subclassification is a different
// length number, where major is composed of 7, minor of 10 and index of 15
// bits. Example:
//  44205263 in a binary form is 00000010101000101000010011001111 which decomposes into:
//	0000001 - major (7 bit) - 1
//
//		   0101000101 - minor (10 bit) - 325
//
//					 000010011001111 - index (15 bit) - 1231
// Major should be a global scope division like 'Simulator', 'Mapping' or
// 'Session'. Minor divides the major into subclasses like the simulator
// connection or the simulator model definitions. Index is the most precise
// classification, unique within its minor.
type Class uint32

// Index is a 15 bit error subclassification unique within its minor and major.
func (c Class) Index() Index {
	return Index(uint32(c) & maxIndexValue)
}

// IsMajor checks if the class is composed of provided major 'm'.
func (c Class) IsMajor(m Major) bool {
	return c.Major() == m
}

// Major is a 7 bit major classification of given class.
func (c Class) Major() Major {
	return Major(c >> (32 - majorBitSize))
}

// Minor is a 10 bit minor classification unique within given major.
func (c Class) Minor() Minor {
	return Minor(uint32(c) >> indexBitSize & maxMinorValue)
}

// String implements fmt.Stringer interface.
func (c Class) String() string {
	return fmt.Sprintf("%d:%d:%d", c.Major(), c.Minor(), c.Index())
}

// Major is a 7 bit top level error classification.
type Major uint8

// InBounds checks if the major value fits in its 7 bit size.
func (m Major) InBounds() bool {
	return (m >> majorBitSize) == 0
}

// Minor is a 10 bit mid level error classification unique within its major.
type Minor uint16

// InBounds checks if the minor value fits in its 10 bit size.
func (m Minor) InBounds() bool {
	return (m >> minorBitSize) == 0
}

// Index is a 15 bit lowest level error classification unique within its
// major and minor pair.
type Index uint16

// InBounds checks if the index value fits in its 15 bit size.
func (i Index) InBounds() bool {
	return (i >> indexBitSize) == 0
}

// NewMajor registers and returns the next major classification.
func NewMajor() (Major, error) {
	return container.newMajor()
}

// MustNewMajor registers and returns the next major classification.
// Panics when the major classifications limit is exceeded.
func MustNewMajor() Major {
	m, err := NewMajor()
	if err != nil {
		panic(err)
	}
	return m
}

// NewMinor registers and returns the next minor classification
// for the major 'mjr'.
func NewMinor(mjr Major) (Minor, error) {
	return container.newMinor(mjr)
}

// MustNewMinor registers and returns the next minor classification for the
// major 'mjr'. Panics on unregistered major or exceeded minor limit.
func MustNewMinor(mjr Major) Minor {
	m, err := NewMinor(mjr)
	if err != nil {
		panic(err)
	}
	return m
}

// NewIndex registers and returns the next index classification for
// the 'mjr', 'mnr' pair.
func NewIndex(mjr Major, mnr Minor) (Index, error) {
	return container.newIndex(mjr, mnr)
}

// MustNewIndex registers and returns the next index classification for the
// 'mjr', 'mnr' pair. Panics on invalid input subclassifications.
func MustNewIndex(mjr Major, mnr Minor) Index {
	i, err := NewIndex(mjr, mnr)
	if err != nil {
		panic(err)
	}
	return i
}

// NewClass composes the class from provided 'mjr', 'mnr' and 'idx'.
func NewClass(mjr Major, mnr Minor, idx Index) (Class, error) {
	if err := container.checkIndex(mjr, mnr, idx); err != nil {
		return Class(0), err
	}
	return newClass(mjr, mnr, idx), nil
}

// MustNewClass composes the class from provided 'mjr', 'mnr' and 'idx'.
// Panics when any of the subclassifications is not registered.
func MustNewClass(mjr Major, mnr Minor, idx Index) Class {
	c, err := NewClass(mjr, mnr, idx)
	if err != nil {
		panic(err)
	}
	return c
}

// NewClassWIndex registers the next index for the 'mjr', 'mnr' pair and
// composes the class from the triple.
func NewClassWIndex(mjr Major, mnr Minor) (Class, error) {
	idx, err := NewIndex(mjr, mnr)
	if err != nil {
		return Class(0), err
	}
	return newClass(mjr, mnr, idx), nil
}

// MustNewClassWIndex registers the next index for the 'mjr', 'mnr' pair and
// composes the class from the triple. Panics on invalid input.
func MustNewClassWIndex(mjr Major, mnr Minor) Class {
	c, err := NewClassWIndex(mjr, mnr)
	if err != nil {
		panic(err)
	}
	return c
}

// NewMajorClass composes the class from the major 'mjr' only, with zero
// valued minor and index.
func NewMajorClass(mjr Major) (Class, error) {
	if err := container.checkMajor(mjr); err != nil {
		return Class(0), err
	}
	return newClass(mjr, Minor(0), Index(0)), nil
}

// MustNewMajorClass composes the class from the major 'mjr' only.
// Panics when the major is not registered.
func MustNewMajorClass(mjr Major) Class {
	c, err := NewMajorClass(mjr)
	if err != nil {
		panic(err)
	}
	return c
}

// NewMinorClass composes the class from the 'mjr', 'mnr' pair with a zero
// valued index.
func NewMinorClass(mjr Major, mnr Minor) (Class, error) {
	if err := container.checkMinor(mjr, mnr); err != nil {
		return Class(0), err
	}
	return newClass(mjr, mnr, Index(0)), nil
}

// MustNewMinorClass composes the class from the 'mjr', 'mnr' pair.
// Panics when the pair is not registered.
func MustNewMinorClass(mjr Major, mnr Minor) Class {
	c, err := NewMinorClass(mjr, mnr)
	if err != nil {
		panic(err)
	}
	return c
}

func newClass(mjr Major, mnr Minor, idx Index) Class {
	return Class(uint32(mjr)<<(32-majorBitSize) | uint32(mnr)<<indexBitSize | uint32(idx))
}

var container *classesContainer

func init() {
	container = newClassesContainer()
	registerClassificationClasses()
}

var (
	// MjrClassification is the major classification for the
	// classification system itself.
	MjrClassification Major

	// MnrClassRegistration is the minor classification for the class
	// registration process.
	MnrClassRegistration Minor

	// ClInvalidMajor is the classification for invalid major input values.
	ClInvalidMajor Class
	// ClInvalidMinor is the classification for invalid minor input values.
	ClInvalidMinor Class
	// ClInvalidIndex is the classification for invalid index input values.
	ClInvalidIndex Class
)

func registerClassificationClasses() {
	MjrClassification = MustNewMajor()
	MnrClassRegistration = MustNewMinor(MjrClassification)
	ClInvalidMajor = MustNewClassWIndex(MjrClassification, MnrClassRegistration)
	ClInvalidMinor = MustNewClassWIndex(MjrClassification, MnrClassRegistration)
	ClInvalidIndex = MustNewClassWIndex(MjrClassification, MnrClassRegistration)
}

// resetContainer clears all registered classifications. Used by tests.
func resetContainer() {
	container = newClassesContainer()
	registerClassificationClasses()
}

type classesContainer struct {
	mu sync.Mutex

	major   Major
	minors  map[Major]Minor
	indexes map[uint32]Index
}

func newClassesContainer() *classesContainer {
	return &classesContainer{
		minors:  map[Major]Minor{},
		indexes: map[uint32]Index{},
	}
}

func (c *classesContainer) newMajor() (Major, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := c.major + 1
	if !next.InBounds() {
		return Major(0), New(ClInvalidMajor, "major classifications limit exceeded")
	}
	c.major = next
	return next, nil
}

func (c *classesContainer) newMinor(mjr Major) (Minor, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.checkMajorLocked(mjr); err != nil {
		return Minor(0), err
	}

	next := c.minors[mjr] + 1
	if !next.InBounds() {
		return Minor(0), Newf(ClInvalidMinor, "minor classifications limit exceeded for major: '%d'", mjr)
	}
	c.minors[mjr] = next
	return next, nil
}

func (c *classesContainer) newIndex(mjr Major, mnr Minor) (Index, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.checkMinorLocked(mjr, mnr); err != nil {
		return Index(0), err
	}

	key := minorKey(mjr, mnr)
	next := c.indexes[key] + 1
	if !next.InBounds() {
		return Index(0), Newf(ClInvalidIndex, "index classifications limit exceeded for class: '%d:%d'", mjr, mnr)
	}
	c.indexes[key] = next
	return next, nil
}

func (c *classesContainer) checkMajor(mjr Major) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.checkMajorLocked(mjr)
}

func (c *classesContainer) checkMinor(mjr Major, mnr Minor) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.checkMinorLocked(mjr, mnr)
}

func (c *classesContainer) checkIndex(mjr Major, mnr Minor, idx Index) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.checkMinorLocked(mjr, mnr); err != nil {
		return err
	}
	if idx == 0 || idx > c.indexes[minorKey(mjr, mnr)] {
		return Newf(ClInvalidIndex, "index: '%d' not registered for class: '%d:%d'", idx, mjr, mnr)
	}
	return nil
}

func (c *classesContainer) checkMajorLocked(mjr Major) error {
	if mjr == 0 || mjr > c.major {
		return Newf(ClInvalidMajor, "major: '%d' not registered", mjr)
	}
	return nil
}

func (c *classesContainer) checkMinorLocked(mjr Major, mnr Minor) error {
	if err := c.checkMajorLocked(mjr); err != nil {
		return err
	}
	if mnr == 0 || mnr > c.minors[mjr] {
		return Newf(ClInvalidMinor, "minor: '%d' not registered for major: '%d'", mnr, mjr)
	}
	return nil
}

func minorKey(mjr Major, mnr Minor) uint32 {
	return uint32(mjr)<<minorBitSize | uint32(mnr)
}
