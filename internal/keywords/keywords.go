// Package keywords holds the static trigger tables shared by all analyzers.
// Lists are bilingual (Indonesian + English) and lowercase; matching is plain
// substring containment, so callers must lowercase input text first.
package keywords

import "strings"

// Aggression marks direct verbal abuse aimed at the character.
var Aggression = []string{
	"bodoh", "goblok", "tolol", "bego", "anjing", "bangsat", "brengsek",
	"sampah", "tak berguna", "stupid", "idiot", "moron", "useless",
	"pathetic", "worthless", "shut up", "hate you", "diam kau",
}

// Stalking marks surveillance or possessive-obsession language.
var Stalking = []string{
	"ikutin", "ngikutin", "kuikuti", "mengawasi", "ku awasi", "selalu lihat",
	"tahu dimana", "tahu di mana", "stalk", "following you", "watching you",
	"i know where", "always watching", "spying", "memata-matai",
}

// Panic marks distress calls and flight language.
var Panic = []string{
	"tolong", "help", "takut", "scared", "terrified", "panik", "panic",
	"lari", "run away", "bahaya", "danger", "jangan mendekat", "stay away",
}

// Comfort marks apologies, reassurance, and affection used to de-escalate.
var Comfort = []string{
	"maaf", "sorry", "tenang", "calm down", "tidak apa", "gapapa",
	"it's okay", "its okay", "peluk", "hug", "aman", "safe", "disini untukmu",
	"here for you", "kamu tidak sendiri", "not alone", "sayang kamu",
}

// Romance marks affectionate or courting language.
var Romance = []string{
	"cinta", "love you", "sayang", "rindu", "kangen", "miss you",
	"cantik", "beautiful", "tampan", "handsome", "manis", "cium", "kiss",
	"darling", "honey", "my love", "pacarku", "milikku",
}

// Hostility marks rejection and relationship-damaging language.
var Hostility = []string{
	"benci", "hate", "bodoh", "stupid", "muak", "sick of you", "pergi sana",
	"go away", "jelek", "ugly", "putus", "break up", "tinggalkan aku",
	"leave me alone", "jangan ganggu", "menjijikkan", "disgusting",
}

// Violence marks physical trauma inflicted on or described by the character.
var Violence = []string{
	"tampar", "slap", "pukul", "punch", "hit me", "dipukul", "tendang",
	"kick", "darah", "blood", "luka", "wound", "tusuk", "stab", "cekik",
	"choke", "patah", "broken bone", "memar", "bruise",
}

// Pleasure marks euphoric or elated states.
var Pleasure = []string{
	"bahagia sekali", "senang sekali", "gembira", "ecstatic", "euphoric",
	"overjoyed", "blissful", "luar biasa", "terbaik dalam hidupku",
	"wonderful", "amazing day", "melayang",
}

// HealthSevere marks life-threatening conditions.
var HealthSevere = []string{
	"sekarat", "dying", "koma", "coma", "pendarahan", "hemorrhage",
	"kanker", "cancer", "overdosis", "overdose", "tidak bisa bernapas",
	"can't breathe", "cant breathe", "serangan jantung", "heart attack",
}

// HealthModerate marks routine illness.
var HealthModerate = []string{
	"demam", "fever", "sakit kepala", "headache", "pusing", "dizzy",
	"mual", "nausea", "batuk", "cough", "flu", "lemas", "meriang",
	"sakit perut", "stomachache", "feeling sick",
}

// HealthRecovery marks recuperation language that offsets illness impact.
var HealthRecovery = []string{
	"sembuh", "recovered", "membaik", "getting better", "pulih", "healed",
	"baikan", "feeling better", "sudah sehat",
}

// Weather tables. Rain and Cold share the cold-sensitivity branch.
var (
	WeatherRain  = []string{"hujan", "rain", "gerimis", "drizzle"}
	WeatherStorm = []string{"badai", "storm", "petir", "thunder", "guntur", "lightning", "kilat"}
	WeatherCold  = []string{"dingin", "cold", "beku", "freezing", "salju", "snow"}
	WeatherHot   = []string{"panas", "hot", "terik", "gerah", "heatwave"}
)

// Scenario stress tables, matched against location+activity text.
var (
	HighStress = []string{
		"hospital", "rumah sakit", "police", "polisi", "funeral", "pemakaman",
		"kecelakaan", "accident", "kebakaran", "fire", "perkelahian", "fight",
		"perang", "war", "kejar", "chase",
	}
	ModerateStress = []string{
		"ujian", "exam", "wawancara", "interview", "deadline", "lembur",
		"overtime", "macet", "traffic", "keramaian", "crowd", "debat",
		"argument", "presentasi", "presentation",
	}
	ComfortPlace = []string{
		"rumah", "home", "pantai", "beach", "kafe", "cafe", "taman", "park",
		"kebun", "garden", "kasur", "bed", "tidur", "sleeping", "santai",
		"relaxing", "piknik", "picnic",
	}
)

// StopWords are excluded from engram extraction. Tokens of length <= 2 are
// dropped before this set is consulted.
var StopWords = map[string]struct{}{
	// Indonesian
	"yang": {}, "dan": {}, "dari": {}, "ini": {}, "itu": {}, "ada": {},
	"aku": {}, "kamu": {}, "dia": {}, "kami": {}, "kita": {}, "mereka": {},
	"saya": {}, "untuk": {}, "dengan": {}, "tidak": {}, "bisa": {},
	"akan": {}, "sudah": {}, "juga": {}, "saja": {}, "mau": {}, "lagi": {},
	"apa": {}, "deh": {}, "sih": {}, "dong": {}, "banget": {}, "sangat": {},
	"adalah": {}, "pada": {}, "dalam": {}, "kalau": {}, "karena": {},
	// English
	"the": {}, "and": {}, "for": {}, "you": {}, "are": {}, "was": {},
	"but": {}, "not": {}, "with": {}, "this": {}, "that": {}, "have": {},
	"from": {}, "they": {}, "she": {}, "his": {}, "her": {}, "him": {},
	"had": {}, "can": {}, "will": {}, "would": {}, "there": {}, "their": {},
	"about": {}, "just": {}, "like": {}, "your": {}, "its": {}, "what": {},
	"when": {}, "where": {}, "who": {}, "how": {}, "very": {}, "really": {},
}

// ContainsAny reports whether text contains any keyword from the list.
// Text must already be lowercased.
func ContainsAny(text string, list []string) bool {
	for _, keyword := range list {
		if keyword == "" {
			continue
		}
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}

// CountMatches returns how many keywords from the list occur in text.
// Each keyword counts at most once. Text must already be lowercased.
func CountMatches(text string, list []string) int {
	count := 0
	for _, keyword := range list {
		if keyword == "" {
			continue
		}
		if strings.Contains(text, keyword) {
			count++
		}
	}
	return count
}

// IsStopWord reports whether token is in the bilingual stop-word set.
func IsStopWord(token string) bool {
	_, ok := StopWords[token]
	return ok
}
