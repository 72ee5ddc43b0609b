package service

// cannedSummaries is the fixed set of diagnostic summaries the logging
// endpoint draws from. Each entry pairs a plausible condition with
// self-care suggestions; none of this is real medical advice.
var cannedSummaries = []string{
	"🩺 Mild viral infection.\n💡 Suggestions: Rest, hydrate, and monitor for 2–3 days.",
	"🧠 Tension headache or dehydration.\n💡 Suggestions: Rest eyes, hydrate, use mild pain relief.",
	"😷 Seasonal flu or cold.\n💡 Suggestions: Warm fluids, rest, and monitor symptoms.",
	"👃 Sinus infection.\n💡 Suggestions: Try saline spray, consult ENT if needed.",
	"🤧 Allergy or mild infection.\n💡 Suggestions: Avoid triggers, try antihistamines.",
	"🌡️ Low-grade fever from viral illness.\n💡 Suggestions: Take paracetamol, rest, and check temperature regularly.",
	"🫁 Mild bronchitis.\n💡 Suggestions: Avoid cold drinks, try steam inhalation, consult doctor if it worsens.",
	"🥴 Food poisoning.\n💡 Suggestions: Hydrate with ORS, eat light, and avoid dairy or spicy food temporarily.",
	"🤒 Stomach flu (gastroenteritis).\n💡 Suggestions: Drink clear fluids, avoid solid food initially, and rest.",
	"🧏 Ear infection.\n💡 Suggestions: Warm compress, avoid inserting anything in ear, see doctor if pain increases.",
	"😴 Fatigue due to stress.\n💡 Suggestions: Take short naps, reduce screen time, try deep breathing or meditation.",
	"💊 Medication side effect.\n💡 Suggestions: Review recent medications, consult doctor before stopping any dose.",
	"🫀 Mild chest congestion.\n💡 Suggestions: Use vapor rubs, inhale steam, and avoid cold beverages.",
	"🦴 Muscle strain.\n💡 Suggestions: Apply cold compress, rest the area, and avoid heavy lifting.",
	"👁️ Eye strain.\n💡 Suggestions: Follow 20-20-20 rule, reduce screen glare, use lubricating eye drops.",
}
