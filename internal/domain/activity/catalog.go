package activity

import (
	"errors"
	"fmt"
)

// Definition describes one trackable activity. Definitions are
// configuration, not user data: they are loaded at startup and never
// change while the engine is running.
type Definition struct {
	// Key is the unique identifier used in commands and storage
	// (e.g. "pushup").
	Key string

	// Name is the display name (e.g. "Отжимания").
	Name string

	// GenitiveName is the genitive/unit label used in sentences
	// (e.g. "анжуманий", "мл. пива").
	GenitiveName string

	// Emoji decorates the activity in rendered stats.
	Emoji string

	// Unit is an optional suffix appended to counts (e.g. " мл.", "км").
	Unit string

	// Milestones are the achievement thresholds, strictly increasing
	// positive integers.
	Milestones []int64

	// Messages maps a milestone to its achievement message. The map may
	// be sparse; missing entries fall back to a generated default.
	Messages map[int64]string
}

// Validate checks the definition invariants.
func (d Definition) Validate() error {
	if d.Key == "" {
		return errors.New("activity: definition key cannot be empty")
	}
	var prev int64
	for i, m := range d.Milestones {
		if m <= 0 {
			return fmt.Errorf("activity: %s: milestone %d must be positive", d.Key, m)
		}
		if i > 0 && m <= prev {
			return fmt.Errorf("activity: %s: milestones must be strictly increasing", d.Key)
		}
		prev = m
	}
	return nil
}

// Catalog is the immutable registry of activity definitions. It is an
// explicitly constructed value injected into the engine; adding a new
// activity requires only inserting a definition here.
type Catalog struct {
	defs  []Definition
	byKey map[string]Definition
}

// NewCatalog builds a catalog from the given definitions. Iteration order
// of All follows registration order.
func NewCatalog(defs ...Definition) (*Catalog, error) {
	c := &Catalog{
		defs:  make([]Definition, 0, len(defs)),
		byKey: make(map[string]Definition, len(defs)),
	}
	for _, d := range defs {
		if err := d.Validate(); err != nil {
			return nil, err
		}
		if _, exists := c.byKey[d.Key]; exists {
			return nil, fmt.Errorf("activity: duplicate definition key: %s", d.Key)
		}
		c.defs = append(c.defs, d)
		c.byKey[d.Key] = d
	}
	return c, nil
}

// Lookup returns the definition for a key. Callers must treat a missing
// key as a user input error, not a system fault.
func (c *Catalog) Lookup(key string) (Definition, bool) {
	d, ok := c.byKey[key]
	return d, ok
}

// All returns the definitions in registration order, used for consistent
// display.
func (c *Catalog) All() []Definition {
	out := make([]Definition, len(c.defs))
	copy(out, c.defs)
	return out
}

// Keys returns the registered activity keys in registration order.
func (c *Catalog) Keys() []string {
	keys := make([]string, len(c.defs))
	for i, d := range c.defs {
		keys[i] = d.Key
	}
	return keys
}

// DefaultCatalog returns the stock activity set of the bot.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(
		Definition{
			Key:          "pushup",
			Name:         "Отжимания",
			GenitiveName: "анжуманий",
			Emoji:        "🔥",
			Milestones:   []int64{100, 250, 500, 1000, 2500, 5000, 10000},
			Messages: map[int64]string{
				100:   "🎉 Поздравляем! Вы достигли 100 анжуманий! еще бегит не забывай! 💪",
				250:   "🔥 Невероятно! 250 анжуманий - можно и пивка ёбнуть, заслужил 🚀",
				500:   "🏆 ПОТРЯСАЮЩЕ! 500 анжуманий! царь! 👑\n🎯 МОЧИ ХУЯЧ!",
				1000:  "🥇 ЛЕГЕНДАРНО! 1000 анжуманий! Хуя ты мощный! ⚡",
				2500:  "🌟 ЭПИЧНО! 2500 анжуманий! Давай Машина мочи 🦾",
				5000:  "🔥 ЕБАТЬ! 5000 анжуманий! БОГОПОДОБИЕ! 🤖",
				10000: "👑 Пиздец ты конь! 10000 анжуманий! Вы покорили Олимп! 🏔️",
			},
		},
		Definition{
			Key:          "nothing",
			Name:         "Ни-Че-Го",
			GenitiveName: "ничего",
			Emoji:        "👑",
			Milestones:   []int64{100, 250, 500, 1000, 2500, 5000, 10000},
			Messages: map[int64]string{
				100:   "ну ок",
				250:   "🔥заебись заслужил",
				500:   "нууууууу окееееей ",
				1000:  "⚡",
				2500:  "ты че охуел ничего не делать?",
				5000:  "пивка хотябы випей",
				10000: "спасибо Миша!🏔️",
			},
		},
		Definition{
			Key:          "beer",
			Name:         "Пиво",
			GenitiveName: "мл. пива",
			Emoji:        "🍺",
			Unit:         " мл.",
			Milestones:   []int64{1000, 2500, 5000, 10000, 25000, 50000},
			Messages: map[int64]string{
				1000:  "🍺 Литр пива выпит! Э-э сайпал да давай отжимайся! 😄",
				2500:  "🍻 2.5 литра! Время удвоить тренировки! 💪",
				5000:  "🍺 5 литров! Серьезные объемы! Баланс - это важно! ⚖️",
				10000: "🍻 10 литров! Вы настоящий ценитель! Не забывайте про спорт! 🏃‍♂️",
				25000: "🍺 25 литров! Впечатляющая статистика! 📊",
				50000: "🍻 50 литров! Легендарный результат! 🏆",
			},
		},
		Definition{
			Key:          "bike",
			Name:         "Велосипедик",
			GenitiveName: "км на велике",
			Emoji:        "🚲",
			Unit:         "км",
			Milestones:   []int64{100, 250, 500, 1000, 2500, 5000, 10000},
			Messages: map[int64]string{
				100:   "🚲крутышка🚲",
				250:   "🔥 крути педали ",
				500:   "от Пива не уедешь 🍺🍻🍺",
				1000:  "🚀 ИИИХХХУУУ!🎉",
				2500:  "🥉 почти до Москвы доехал",
				5000:  "🥈 Там уже ноги как столбы!",
				10000: "🥇",
			},
		},
		Definition{
			Key:          "pullup",
			Name:         "Подтягивания",
			GenitiveName: "Подтягиваний",
			Emoji:        "🔥",
			Milestones:   []int64{100, 250, 500, 1000, 2500, 5000, 10000},
			Messages: map[int64]string{
				100:   " 100 подтягиваний! красаучик 💪",
				250:   "🔥 200 подтягиваний!🦾",
				500:   "🏆 300 Подтягиваний!!! БОГ! 👑\n🎯 МОЧИ ХУЯЧ!",
				1000:  "🥇 ЛЕГЕНДА! 400 Подтягиваний!!! ",
				2500:  "ЭПИКККККК!🌟  500 Подтягиваний! Машина 🦾",
				5000:  "🔥 ЕБАТЬ! 600 Подтягиваний! БОГОПОДОБИЕ! 🤖",
				10000: "! ну это что-то 10000 Потягушек.! 🏔️",
			},
		},
	)
	if err != nil {
		// The stock catalog is static data; a validation failure here is
		// a programming error.
		panic(err)
	}
	return c
}
