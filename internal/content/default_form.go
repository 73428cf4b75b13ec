package content

import "github.com/quizfortraders/funnel-api/internal/domain/entity"

// DefaultFormDef - определение формы для сидера: публикуемая форма со всеми
// вопросами и скоринговыми картами.
type DefaultFormDef struct {
	Name        string
	Slug        string
	Locale      string
	Description string
	Questions   []entity.QuizFormQuestion
}

// challengeMap и decisionMap - канонические скоринговые карты двух
// классифицирующих вопросов. Сидер кладет их в JSONB формы, дальше расчет
// идет целиком по данным формы.
var challengeMap = entity.ScoringMap{
	"emotional_decisions": {entity.TypeEmotionalTrader: 3},
	"not_enough_time":     {entity.TypeTimeStarvedTrader: 3},
	"plan_not_sticking":   {entity.TypeInconsistentExecutor: 3},
	"too_much_info":       {entity.TypeOverwhelmedAnalyst: 3},
}

var decisionMap = entity.ScoringMap{
	"gut_feeling":        {entity.TypeEmotionalTrader: 2},
	"analyze_miss_entry": {entity.TypeOverwhelmedAnalyst: 1, entity.TypeTimeStarvedTrader: 1},
	"rules_but_break":    {entity.TypeInconsistentExecutor: 2},
	"still_figuring_out": {entity.TypeOverwhelmedAnalyst: 2},
}

// DefaultForms возвращает стандартные формы квиза для обеих локалей.
// Карты скоринга копируются, чтобы вызывающий не мог испортить оригинал.
func DefaultForms() []DefaultFormDef {
	return []DefaultFormDef{defaultFormEN(), defaultFormRU()}
}

func cloneScoring(m entity.ScoringMap) entity.ScoringMap {
	out := make(entity.ScoringMap, len(m))
	for answer, row := range m {
		rowCopy := make(map[string]int, len(row))
		for pt, points := range row {
			rowCopy[pt] = points
		}
		out[answer] = rowCopy
	}
	return out
}

func defaultFormEN() DefaultFormDef {
	return DefaultFormDef{
		Name:        "Trading Personality Quiz",
		Slug:        "trading-personality",
		Locale:      entity.LocaleEN,
		Description: "Discover your trading personality type and get a personalized report",
		Questions: []entity.QuizFormQuestion{
			{
				QuestionKey: "first_name",
				Type:        entity.QuestionTypeText,
				Prompt:      "What should we call you?",
				Placeholder: "Enter your first name",
				Position:    0,
				Required:    true,
			},
			{
				QuestionKey: "email",
				Type:        entity.QuestionTypeEmail,
				Prompt:      "Where should we send your Trading Personality Report?",
				Placeholder: "your@email.com",
				Position:    1,
				Required:    true,
			},
			{
				QuestionKey: "experience_level",
				Type:        entity.QuestionTypeMultipleChoice,
				Prompt:      "How long have you been trading?",
				Options: entity.OptionList{
					{Value: "beginner", Label: "Less than 6 months"},
					{Value: "intermediate", Label: "6 months - 2 years"},
					{Value: "experienced", Label: "2+ years"},
				},
				Position: 2,
				Required: true,
			},
			{
				QuestionKey: "performance",
				Type:        entity.QuestionTypeMultipleChoice,
				Prompt:      "Overall, how has your trading journey been so far?",
				Options: entity.OptionList{
					{Value: "struggling", Label: "Mostly losses, still learning the ropes"},
					{Value: "breaking_even", Label: "Breaking even, some wins and losses"},
					{Value: "inconsistent_profit", Label: "Small profits but very inconsistent"},
					{Value: "undisclosed", Label: "Prefer not to say"},
				},
				Position: 3,
				Required: true,
			},
			{
				QuestionKey: "biggest_challenge",
				Type:        entity.QuestionTypeMultipleChoice,
				Prompt:      "What's your BIGGEST struggle in trading right now?",
				Options: entity.OptionList{
					{Value: "emotional_decisions", Label: "Making emotional decisions (FOMO, fear, revenge trading)"},
					{Value: "not_enough_time", Label: "Not enough time to monitor markets and execute trades"},
					{Value: "plan_not_sticking", Label: "Having a trading plan but not sticking to it"},
					{Value: "too_much_info", Label: "Too much information, don't know what to focus on"},
				},
				Position:      4,
				Required:      true,
				ScoringWeight: 3,
				ScoringMap:    cloneScoring(challengeMap),
			},
			{
				QuestionKey: "decision_style",
				Type:        entity.QuestionTypeMultipleChoice,
				Prompt:      "How do you typically make trading decisions?",
				Options: entity.OptionList{
					{Value: "gut_feeling", Label: "Based on gut feeling or market hype on social media"},
					{Value: "analyze_miss_entry", Label: "I analyze thoroughly but often miss the entry point"},
					{Value: "rules_but_break", Label: "I have rules but tend to break them in the moment"},
					{Value: "still_figuring_out", Label: "I'm still figuring out my approach"},
				},
				Position:      5,
				Required:      true,
				ScoringWeight: 2,
				ScoringMap:    cloneScoring(decisionMap),
			},
			{
				QuestionKey: "automation_experience",
				Type:        entity.QuestionTypeMultipleChoice,
				Prompt:      "Have you ever considered automated trading?",
				Options: entity.OptionList{
					{Value: "automation_newbie", Label: "Never tried it, not sure how it works"},
					{Value: "automation_skeptic", Label: "Tried it but didn't work out"},
					{Value: "automation_ready", Label: "Very interested but don't know where to start"},
					{Value: "automation_user", Label: "Currently using some automation"},
				},
				Position: 6,
				Required: true,
			},
		},
	}
}

func defaultFormRU() DefaultFormDef {
	return DefaultFormDef{
		Name:        "Квиз: торговая личность",
		Slug:        "trading-personality-ru",
		Locale:      entity.LocaleRU,
		Description: "Узнайте свой тип торговой личности и получите персональный отчет",
		Questions: []entity.QuizFormQuestion{
			{
				QuestionKey: "first_name",
				Type:        entity.QuestionTypeText,
				Prompt:      "Как вас зовут?",
				Placeholder: "Введите ваше имя",
				Position:    0,
				Required:    true,
			},
			{
				QuestionKey: "email",
				Type:        entity.QuestionTypeEmail,
				Prompt:      "Куда отправить ваш персональный отчёт?",
				Placeholder: "ваш@email.com",
				Position:    1,
				Required:    true,
			},
			{
				QuestionKey: "experience_level",
				Type:        entity.QuestionTypeMultipleChoice,
				Prompt:      "Как давно вы торгуете?",
				Options: entity.OptionList{
					{Value: "beginner", Label: "Менее 6 месяцев"},
					{Value: "intermediate", Label: "От 6 месяцев до 2 лет"},
					{Value: "experienced", Label: "Более 2 лет"},
				},
				Position: 2,
				Required: true,
			},
			{
				QuestionKey: "performance",
				Type:        entity.QuestionTypeMultipleChoice,
				Prompt:      "Как в целом складывается ваша торговля?",
				Options: entity.OptionList{
					{Value: "struggling", Label: "В основном убытки, ещё учусь"},
					{Value: "breaking_even", Label: "Выхожу в ноль: есть и прибыль, и потери"},
					{Value: "inconsistent_profit", Label: "Небольшая прибыль, но очень нестабильная"},
					{Value: "undisclosed", Label: "Предпочитаю не отвечать"},
				},
				Position: 3,
				Required: true,
			},
			{
				QuestionKey: "biggest_challenge",
				Type:        entity.QuestionTypeMultipleChoice,
				Prompt:      "Что сейчас является вашей ГЛАВНОЙ проблемой в трейдинге?",
				Options: entity.OptionList{
					{Value: "emotional_decisions", Label: "Эмоциональные решения (FOMO, страх, торговля на эмоциях)"},
					{Value: "not_enough_time", Label: "Нет времени следить за рынком и исполнять сделки"},
					{Value: "plan_not_sticking", Label: "Есть торговый план, но я его не придерживаюсь"},
					{Value: "too_much_info", Label: "Слишком много информации, не знаю на чём сосредоточиться"},
				},
				Position:      4,
				Required:      true,
				ScoringWeight: 3,
				ScoringMap:    cloneScoring(challengeMap),
			},
			{
				QuestionKey: "decision_style",
				Type:        entity.QuestionTypeMultipleChoice,
				Prompt:      "Как вы обычно принимаете торговые решения?",
				Options: entity.OptionList{
					{Value: "gut_feeling", Label: "По интуиции или по хайпу в социальных сетях"},
					{Value: "analyze_miss_entry", Label: "Долго анализирую, но часто упускаю точку входа"},
					{Value: "rules_but_break", Label: "У меня есть правила, но в нужный момент я их нарушаю"},
					{Value: "still_figuring_out", Label: "Ещё нахожусь в поиске своего подхода"},
				},
				Position:      5,
				Required:      true,
				ScoringWeight: 2,
				ScoringMap:    cloneScoring(decisionMap),
			},
			{
				QuestionKey: "automation_experience",
				Type:        entity.QuestionTypeMultipleChoice,
				Prompt:      "Думали ли вы об автоматической торговле?",
				Options: entity.OptionList{
					{Value: "automation_newbie", Label: "Никогда не пробовал, не понимаю как это работает"},
					{Value: "automation_skeptic", Label: "Пробовал, но не получилось"},
					{Value: "automation_ready", Label: "Очень интересует, но не знаю с чего начать"},
					{Value: "automation_user", Label: "Уже использую некоторую автоматизацию"},
				},
				Position: 6,
				Required: true,
			},
		},
	}
}
