package summarize

// promptSet holds the per-language instruction templates and fallback strings.
// Each language is fully independent; no template is shared across languages.
type promptSet struct {
	Short        string
	Long         string
	Memo         string
	Fallback     string
	MemoFallback string
}

var prompts = map[Language]promptSet{
	Japanese: {
		Short:        "この記事の内容を、日本語で1～2文、80文字以内で要約してください。対象読者はAIに興味のある大学生です。",
		Long:         "この記事の内容を、日本語で3～5文程度に要約してください。重要なポイントを箇条書き風に含めてください。",
		Memo:         "以下のニュースから、今日の業界動向を2-3行の日本語でまとめてください（「ざっくり業界メモ」として表示します）。",
		Fallback:     "要約を生成できませんでした。",
		MemoFallback: "本日の主要なニュースをお届けします。詳細は各記事をご確認ください。",
	},
	English: {
		Short:        "Summarize this article in English in 1-2 sentences, within 150 characters. Target audience: university students interested in AI.",
		Long:         "Summarize this article in English in 3-5 sentences. Include key points in a bullet-point style.",
		Memo:         "From the following news items, summarize today's industry trends in English in 2-3 lines (to be displayed as 'Daily Industry Memo').",
		Fallback:     "Summary unavailable.",
		MemoFallback: "Today's major news updates. Please check each article for details.",
	},
	Korean: {
		Short:        "이 기사의 내용을 한국어로 1~2문장, 100자 이내로 요약해주세요. 대상 독자는 AI에 관심이 있는 대학생입니다.",
		Long:         "이 기사의 내용을 한국어로 3~5문장 정도로 요약해주세요. 중요한 포인트를 글머리 기호 스타일로 포함해주세요.",
		Memo:         "다음 뉴스에서 오늘의 업계 동향을 한국어로 2-3줄로 요약해주세요 ('일일 산업 메모'로 표시됩니다).",
		Fallback:     "요약을 생성할 수 없습니다.",
		MemoFallback: "오늘의 주요 뉴스를 제공합니다. 자세한 내용은 각 기사를 확인해주세요.",
	},
	Chinese: {
		Short:        "请用中文在1-2句话内总结这篇文章，字数在100字以内。目标读者是对AI感兴趣的大学生。",
		Long:         "请用中文在3-5句话内总结这篇文章。以要点形式包含重要信息。",
		Memo:         "从以下新闻中，用中文2-3行总结今天的行业动态（将显示为'每日行业备忘录'）。",
		Fallback:     "无法生成摘要。",
		MemoFallback: "今日主要新闻更新。详情请查看各篇文章。",
	},
}

func promptsFor(lang Language) promptSet {
	if p, ok := prompts[lang]; ok {
		return p
	}
	return prompts[DefaultLanguage]
}
