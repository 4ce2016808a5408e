package models

import "strings"

// Vocabulary is a fixed, ordered set of legal values for a constrained-choice field
type Vocabulary struct {
	name   string
	values []string
	index  map[string]struct{}
}

// NewVocabulary builds a vocabulary from its values in declaration order
func NewVocabulary(name string, values ...string) Vocabulary {
	index := make(map[string]struct{}, len(values))
	for _, v := range values {
		index[v] = struct{}{}
	}
	return Vocabulary{
		name:   name,
		values: append([]string(nil), values...),
		index:  index,
	}
}

// Name returns the vocabulary name used in violation messages
func (v Vocabulary) Name() string {
	return v.name
}

// Contains reports exact membership
func (v Vocabulary) Contains(value string) bool {
	_, ok := v.index[value]
	return ok
}

// Values returns a copy of the vocabulary in declaration order
func (v Vocabulary) Values() []string {
	return append([]string(nil), v.values...)
}

// Polarity classifies a yes/no answer
type Polarity int

const (
	PolarityUnknown Polarity = iota
	PolarityAffirmative
	PolarityNegative
)

// LocalizedAnswer is one wording of a yes/no answer tagged with its polarity
type LocalizedAnswer struct {
	Text     string
	Polarity Polarity
}

// AnswerSet is a tagged multilingual yes/no vocabulary. Membership and
// polarity lookups go through here rather than ad hoc string lists.
type AnswerSet struct {
	name    string
	answers []LocalizedAnswer
	byText  map[string]LocalizedAnswer
}

// NewAnswerSet builds an answer set; later duplicates of the same text are ignored
func NewAnswerSet(name string, answers ...LocalizedAnswer) AnswerSet {
	byText := make(map[string]LocalizedAnswer, len(answers))
	kept := make([]LocalizedAnswer, 0, len(answers))
	for _, a := range answers {
		if _, dup := byText[a.Text]; dup {
			continue
		}
		byText[a.Text] = a
		kept = append(kept, a)
	}
	return AnswerSet{name: name, answers: kept, byText: byText}
}

// Classify returns the polarity of text, PolarityUnknown when undeclared
func (s AnswerSet) Classify(text string) Polarity {
	if a, ok := s.byText[text]; ok {
		return a.Polarity
	}
	return PolarityUnknown
}

// IsAffirmative reports whether text is a declared affirmative answer
func (s AnswerSet) IsAffirmative(text string) bool {
	return s.Classify(text) == PolarityAffirmative
}

// Affirmatives returns the affirmative wordings in declaration order
func (s AnswerSet) Affirmatives() []string {
	return s.withPolarity(PolarityAffirmative)
}

// Values returns every declared wording in declaration order
func (s AnswerSet) Values() []string {
	out := make([]string, 0, len(s.answers))
	for _, a := range s.answers {
		out = append(out, a.Text)
	}
	return out
}

// AsVocabulary exposes the set for enumeration-membership validation
func (s AnswerSet) AsVocabulary() Vocabulary {
	return NewVocabulary(s.name, s.Values()...)
}

func (s AnswerSet) withPolarity(p Polarity) []string {
	out := make([]string, 0, len(s.answers))
	for _, a := range s.answers {
		if a.Polarity == p {
			out = append(out, a.Text)
		}
	}
	return out
}

func yes(text string) LocalizedAnswer {
	return LocalizedAnswer{Text: text, Polarity: PolarityAffirmative}
}

func no(text string) LocalizedAnswer {
	return LocalizedAnswer{Text: text, Polarity: PolarityNegative}
}

// LegalIssueAnswers is the yes/no vocabulary of the general survey legalIssues question.
// Wordings are listed per language: en, ar, tl, ur, bn, id, zh, so, hi.
var LegalIssueAnswers = NewAnswerSet("legalIssues",
	yes("Yes"), no("No"),
	yes("نعم"), no("لا"),
	yes("Oo"), no("Hindi"),
	yes("ہاں"), no("نہیں"),
	yes("হ্যাঁ"), no("না"),
	yes("Ya"), no("Tidak"),
	yes("是"), no("否"),
	yes("Haa"), no("Maya"),
	yes("हाँ"), no("नहीं"),
)

// GiveawayAnswers holds the affirmative wordings of the giveawayInterest question.
// English and Arabic use a longer phrase than the legalIssues set. Same
// language order as LegalIssueAnswers.
var GiveawayAnswers = NewAnswerSet("giveawayInterest",
	yes("Yes, I would"),
	yes("نعم، أرغب"),
	yes("Oo"),
	yes("ہاں"),
	yes("হ্যাঁ"),
	yes("Ya"),
	yes("是"),
	yes("Haa"),
	yes("हाँ"),
)

// Lawyer survey vocabularies
var (
	ProfessionalStatuses = NewVocabulary("professional_status",
		"محامي مستقل (freelancer)",
		"شريك في مكتب محاماة (2-5 محامين)",
		"مكتب محاماة متوسط (6-15 محامي)",
		"شركة محاماة كبيرة (15+ محامي)",
		"محامي موظف وأبحث عن عمل إضافي",
	)

	ExperienceBands = NewVocabulary("years_experience",
		"1-3 سنوات",
		"4-6 سنوات",
		"7-10 سنوات",
		"أكثر من 10 سنوات",
	)

	DiscountTiers = NewVocabulary("discount_acceptance",
		DiscountTier10to15,
		DiscountTier20to25,
		DiscountTier30to35,
		DiscountTierFullPrice,
	)

	PriceBands = NewVocabulary("current_consultation_price",
		"100-200 ر.س",
		"201-300 ر.س",
		"301-500 ر.س",
		"501-800 ر.س",
		"أكثر من 800 ر.س",
		"لا أقدم استشارات كتابية حالياً",
	)

	Priorities = NewVocabulary("most_important",
		"ضمان الدخل الشهري الثابت",
		"عدد الطلبات المعقول (عدم الضغط)",
		"نوعية القضايا (تتوافق مع تخصصي)",
		"المرونة الكاملة في الوقت",
		"سهولة التعامل مع العملاء",
		OptionOther,
	)

	Challenges = NewVocabulary("biggest_challenge",
		"صعوبة الحصول على عملاء جدد",
		"عدم انتظام الدخل الشهري",
		"صعوبة تحصيل المستحقات من العملاء",
		"عدم وضوح توقعات العملاء",
		"الوقت المهدر في التسويق والإعلانات",
		OptionOther,
	)

	InterestLevels = NewVocabulary("interest_level",
		InterestVeryHigh,
		InterestHigh,
		"ربما - يعتمد على التفاصيل الأخرى",
		"غير مهتم حالياً",
	)
)

// Discount tiers referenced by the value score weights
const (
	DiscountTier10to15    = "نعم، أقبل خصم 10-15%"
	DiscountTier20to25    = "نعم، أقبل خصم 20-25%"
	DiscountTier30to35    = "نعم، أقبل خصم 30-35%"
	DiscountTierFullPrice = "لا، أريد السعر الكامل بدون خصم"
)

// Interest tiers counted as "highly interested"
const (
	InterestVeryHigh = "مهتم جداً - أريد التفاصيل فوراً"
	InterestHigh     = "مهتم - أريد معرفة المزيد"
)

// OptionOther is the overflow choice that pairs with a free-text *_other field
const OptionOther = "أخرى"

// HighInterestLevels are the two top interest tiers
var HighInterestLevels = []string{InterestVeryHigh, InterestHigh}

// IsHighlyInterested reports whether level is one of the two top interest tiers
func IsHighlyInterested(level string) bool {
	return level == InterestVeryHigh || level == InterestHigh
}

// NormalizeEmail is the canonical form used for lawyer email storage and uniqueness
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
