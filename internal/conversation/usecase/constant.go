package usecase

// Handler names recorded on each Turn.
const (
	HandlerEmergency         = "emergency_flow"
	HandlerEmergencyFollowup = "emergency_followup"
	HandlerRiskTriage        = "risk_triage"
	HandlerNutrition         = "nutrition_flow"
	HandlerScheduling        = "scheduling_flow"
	HandlerProfileUpdate     = "profile_update"
	HandlerGeneral           = "general_flow"
)

// Fallback templates used when the renderer times out or fails. Replies must
// always be produced, so these carry the essential guidance on their own.
const (
	fallbackGeneral = "I'm having trouble composing a detailed answer right now. " +
		"For anything urgent, please contact your healthcare provider. " +
		"You can also ask me about nutrition, symptoms, or your next checkup."

	fallbackNutrition = "I'm having trouble providing detailed nutrition advice right now. " +
		"For immediate guidance, focus on eating a variety of local foods including dal, rice, " +
		"vegetables, and fruits. Please consult your healthcare provider for personalized advice."

	fallbackSymptom = "Thank you for telling me about your symptoms. I couldn't prepare a " +
		"detailed answer right now, so please monitor how you feel and contact your healthcare " +
		"provider if anything worsens."

	degradedNotice = "Part of our service is temporarily unavailable, so this is a general answer. "

	correctionRequest = "I couldn't understand the date you mentioned. Please tell me again, " +
		"for example \"my last period was 2026-01-15\" or \"8 weeks ago\"."

	askForDates = "I need to know where you are in your pregnancy before I can schedule a visit. " +
		"Please tell me the first day of your last period, for example \"my last period was 2026-01-15\"."

	noVisitDue = "You have no further routine visit due at this stage. " +
		"If something feels wrong, please contact your healthcare provider directly."

	emergencyFollowupText = "Before we continue: have you been able to seek medical care? " +
		"If you are still in danger, call the emergency number now. " +
		"Tap \"acknowledge\" once you are safe and we can resume normally."

	riskAcknowledgedText = "Thank you for letting me know. I've noted that you have sought care. " +
		"I'll keep a closer eye on things for a while; tell me right away if any symptom returns."
)

// Prompts sent to the renderer per flow.
const (
	promptSystem = "You are MaatriCare, a compassionate maternal health assistant. " +
		"Reply warmly and briefly in plain language. Never diagnose; recommend professional " +
		"care for anything concerning. The user is in the %s stage."

	promptSymptom = "The user reported these symptoms: %s. Current risk level: %s. " +
		"Give short, stage-appropriate self-care advice and say clearly when to seek care.\n\nUser message: %s"

	promptNutrition = "Answer this nutrition question for the %s stage. Focus areas: %s. " +
		"Recommend local foods such as %s.\n\nUser message: %s"

	promptGeneral = "Answer the user's question with stage-appropriate guidance.\n\nUser message: %s"
)
