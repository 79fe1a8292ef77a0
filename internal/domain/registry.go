package domain

import "fmt"

// Registry returns the content-type table driving the generic CRUD and
// generation stack. Adding a type here is the whole job: routes,
// storage, and prompts all follow from the entry.
func Registry() []*ContentType {
	return registry
}

// TypeBySlug looks up a content type by its URL slug.
func TypeBySlug(slug string) (*ContentType, bool) {
	for _, ct := range registry {
		if ct.Slug == slug {
			return ct, true
		}
	}
	return nil, false
}

var platformOptions = []string{"YouTube", "TikTok", "Instagram"}

var registry = []*ContentType{
	{
		Slug:  "scripts",
		Name:  "script",
		Table: "scripts",
		Fields: []Field{
			{Name: "title", Label: "Script Title", Kind: FieldText, Required: true},
			{Name: "topic", Label: "Topic", Kind: FieldText, Required: true},
			{Name: "platform", Label: "Platform", Kind: FieldSelect, Required: true, Options: platformOptions},
			{Name: "duration", Label: "Duration", Kind: FieldSelect, Required: true, Options: []string{"30 seconds", "1 minute", "3 minutes", "5 minutes", "10 minutes", "15 minutes", "20+ minutes"}},
			{Name: "tone", Label: "Tone", Kind: FieldSelect, Required: true, Options: []string{"Casual", "Professional", "Funny", "Educational", "Inspirational"}},
		},
		Prompt: func(p Params) string {
			return fmt.Sprintf(`Generate a complete video script for the following:
Topic: %s
Platform: %s
Duration: %s
Tone: %s

Include: Hook, intro, main content sections, transitions, call-to-action, and outro.`,
				str(p, "topic"), str(p, "platform"), str(p, "duration"), str(p, "tone"))
		},
	},
	{
		Slug:  "titles",
		Name:  "title",
		Table: "titles",
		Fields: []Field{
			{Name: "topic", Label: "Topic", Kind: FieldText, Required: true},
			{Name: "platform", Label: "Platform", Kind: FieldSelect, Required: true, Options: platformOptions},
			{Name: "style", Label: "Style", Kind: FieldSelect, Required: true, Options: []string{"Clickbait", "Professional", "Question", "How-to", "List"}},
			{Name: "keywords", Label: "Keywords", Kind: FieldText},
		},
		Prompt: func(p Params) string {
			return fmt.Sprintf(`Generate 5 catchy video titles for:
Topic: %s
Platform: %s
Style: %s

Make them attention-grabbing, clickable, and optimized for the platform.`,
				str(p, "topic"), str(p, "platform"), str(p, "style"))
		},
	},
	{
		Slug:  "descriptions",
		Name:  "description",
		Table: "descriptions",
		Fields: []Field{
			{Name: "videoTitle", Label: "Video Title", Kind: FieldText, Required: true},
			{Name: "topic", Label: "Topic", Kind: FieldText, Required: true},
			{Name: "platform", Label: "Platform", Kind: FieldSelect, Required: true, Options: platformOptions},
			{Name: "includeLinks", Label: "Include Links Section", Kind: FieldCheckbox},
			{Name: "includeCta", Label: "Include Call-to-Action", Kind: FieldCheckbox},
		},
		Prompt: func(p Params) string {
			return fmt.Sprintf(`Generate an SEO-optimized video description for:
Title: %s
Topic: %s
Platform: %s

Include: Summary, timestamps, relevant links sections, and hashtags.`,
				str(p, "videoTitle"), str(p, "topic"), str(p, "platform"))
		},
	},
	{
		Slug:  "hashtags",
		Name:  "hashtag set",
		Table: "hashtags",
		Fields: []Field{
			{Name: "topic", Label: "Topic", Kind: FieldText, Required: true},
			{Name: "platform", Label: "Platform", Kind: FieldSelect, Required: true, Options: []string{"TikTok", "Instagram", "YouTube", "Twitter"}},
			{Name: "niche", Label: "Niche", Kind: FieldText, Required: true},
			{Name: "count", Label: "Number of Hashtags", Kind: FieldNumber},
		},
		Prompt: func(p Params) string {
			return fmt.Sprintf(`Generate %s relevant hashtags for:
Topic: %s
Platform: %s
Niche: %s

Include a mix of popular, niche, and trending hashtags.`,
				str(p, "count"), str(p, "topic"), str(p, "platform"), str(p, "niche"))
		},
	},
	{
		Slug:  "thumbnails",
		Name:  "thumbnail concept",
		Table: "thumbnails",
		Fields: []Field{
			{Name: "videoTitle", Label: "Video Title", Kind: FieldText, Required: true},
			{Name: "topic", Label: "Topic", Kind: FieldText, Required: true},
			{Name: "style", Label: "Style", Kind: FieldSelect, Required: true, Options: []string{"Minimal", "Bold", "Face Focus", "Before/After", "Text Heavy"}},
			{Name: "colorScheme", Label: "Color Scheme", Kind: FieldText},
		},
		Prompt: func(p Params) string {
			return fmt.Sprintf(`Generate detailed thumbnail concept ideas for:
Video Title: %s
Topic: %s
Style: %s

Include: Visual elements, text overlay suggestions, color schemes, and composition tips.`,
				str(p, "videoTitle"), str(p, "topic"), str(p, "style"))
		},
	},
	{
		Slug:  "hooks",
		Name:  "hook",
		Table: "hooks",
		Fields: []Field{
			{Name: "topic", Label: "Topic", Kind: FieldText, Required: true},
			{Name: "platform", Label: "Platform", Kind: FieldSelect, Required: true, Options: platformOptions},
			{Name: "hookType", Label: "Hook Type", Kind: FieldSelect, Required: true, Options: []string{"Question", "Statement", "Story", "Shock", "Promise"}},
			{Name: "targetEmotion", Label: "Target Emotion", Kind: FieldSelect, Options: []string{"Curiosity", "Fear", "Excitement", "Inspiration", "Humor"}},
		},
		Prompt: func(p Params) string {
			return fmt.Sprintf(`Generate 5 attention-grabbing hooks for:
Topic: %s
Platform: %s
Hook Type: %s

Make them impossible to scroll past!`,
				str(p, "topic"), str(p, "platform"), str(p, "hookType"))
		},
	},
	{
		Slug:  "calendar",
		Name:  "content calendar",
		Table: "calendars",
		Fields: []Field{
			{Name: "niche", Label: "Niche", Kind: FieldText, Required: true},
			{Name: "platform", Label: "Platform", Kind: FieldSelect, Required: true, Options: []string{"YouTube", "TikTok", "Instagram", "Multiple"}},
			{Name: "frequency", Label: "Posting Frequency", Kind: FieldSelect, Required: true, Options: []string{"Daily", "3x/week", "2x/week", "Weekly"}},
			{Name: "duration", Label: "Planning Duration", Kind: FieldSelect, Required: true, Options: []string{"1 week", "2 weeks", "1 month", "3 months"}},
			{Name: "goals", Label: "Goals", Kind: FieldTextarea},
		},
		Prompt: func(p Params) string {
			return fmt.Sprintf(`Create a content calendar for:
Niche: %s
Platform: %s
Posting Frequency: %s
Time Period: %s

Include: Content themes, posting schedule, content types, and strategic timing.`,
				str(p, "niche"), str(p, "platform"), str(p, "frequency"), str(p, "duration"))
		},
	},
	{
		Slug:  "trends",
		Name:  "trend analysis",
		Table: "trends",
		Fields: []Field{
			{Name: "niche", Label: "Niche", Kind: FieldText, Required: true},
			{Name: "platform", Label: "Platform", Kind: FieldSelect, Required: true, Options: []string{"YouTube", "TikTok", "Instagram", "Twitter"}},
			{Name: "timeframe", Label: "Timeframe", Kind: FieldSelect, Required: true, Options: []string{"This week", "This month", "Last 3 months"}},
			{Name: "region", Label: "Region", Kind: FieldText},
		},
		Prompt: func(p Params) string {
			return fmt.Sprintf(`Analyze current trends for:
Niche: %s
Platform: %s
Timeframe: %s

Include: Trending topics, emerging formats, audience interests, and opportunities.`,
				str(p, "niche"), str(p, "platform"), str(p, "timeframe"))
		},
	},
	{
		Slug:  "comments",
		Name:  "comment reply",
		Table: "comment_replies",
		Fields: []Field{
			{Name: "originalComment", Label: "Original Comment", Kind: FieldTextarea, Required: true},
			{Name: "context", Label: "Video Context", Kind: FieldText},
			{Name: "tone", Label: "Response Tone", Kind: FieldSelect, Required: true, Options: []string{"Friendly", "Professional", "Funny", "Grateful", "Informative"}},
			{Name: "platform", Label: "Platform", Kind: FieldSelect, Required: true, Options: platformOptions},
		},
		Prompt: func(p Params) string {
			return fmt.Sprintf(`Generate a thoughtful reply to this comment:
Comment: "%s"
Context: %s
Desired Tone: %s

Make it engaging and encourage further interaction.`,
				str(p, "originalComment"), str(p, "context"), str(p, "tone"))
		},
	},
	{
		Slug:  "ideas",
		Name:  "video idea",
		Table: "ideas",
		Fields: []Field{
			{Name: "niche", Label: "Niche", Kind: FieldText, Required: true},
			{Name: "platform", Label: "Platform", Kind: FieldSelect, Required: true, Options: []string{"YouTube", "TikTok", "Instagram", "Multiple"}},
			{Name: "contentType", Label: "Content Type", Kind: FieldSelect, Required: true, Options: []string{"Tutorial", "Entertainment", "Vlog", "Review", "Educational"}},
			{Name: "targetAudience", Label: "Target Audience", Kind: FieldText},
		},
		Prompt: func(p Params) string {
			return fmt.Sprintf(`Brainstorm 10 content ideas for:
Niche: %s
Platform: %s
Content Type: %s

Include: Unique angles, trending topics, and evergreen content ideas.`,
				str(p, "niche"), str(p, "platform"), str(p, "contentType"))
		},
	},
	{
		Slug:  "seo",
		Name:  "SEO optimization",
		Table: "seo_entries",
		Fields: []Field{
			{Name: "videoTitle", Label: "Video Title", Kind: FieldText, Required: true},
			{Name: "description", Label: "Current Description", Kind: FieldTextarea},
			{Name: "platform", Label: "Platform", Kind: FieldSelect, Required: true, Options: platformOptions},
			{Name: "targetKeywords", Label: "Target Keywords", Kind: FieldText},
		},
		Prompt: func(p Params) string {
			return fmt.Sprintf(`Provide SEO optimization for:
Title: %s
Current Description: %s
Platform: %s

Include: Keyword suggestions, title improvements, description optimization, and tag recommendations.`,
				str(p, "videoTitle"), str(p, "description"), str(p, "platform"))
		},
	},
	{
		Slug:  "analytics",
		Name:  "analytics insight",
		Table: "analytics_insights",
		Fields: []Field{
			{Name: "platform", Label: "Platform", Kind: FieldSelect, Required: true, Options: platformOptions},
			{Name: "metricType", Label: "Metric Type", Kind: FieldSelect, Required: true, Options: []string{"Views", "Engagement", "Subscribers", "Revenue", "Watch Time"}},
			{Name: "dataInput", Label: "Your Data", Kind: FieldTextarea, Required: true},
			{Name: "timeframe", Label: "Timeframe", Kind: FieldSelect, Required: true, Options: []string{"Last 7 days", "Last 30 days", "Last 90 days"}},
		},
		Prompt: func(p Params) string {
			return fmt.Sprintf(`Analyze these analytics and provide insights:
Platform: %s
Metric Type: %s
Data: %s

Include: Performance analysis, patterns, recommendations, and growth strategies.`,
				str(p, "platform"), str(p, "metricType"), str(p, "dataInput"))
		},
	},
	{
		Slug:  "competitors",
		Name:  "competitor analysis",
		Table: "competitors",
		Fields: []Field{
			{Name: "competitorName", Label: "Competitor Name/Channel", Kind: FieldText, Required: true},
			{Name: "competitorUrl", Label: "Competitor URL", Kind: FieldText},
			{Name: "platform", Label: "Platform", Kind: FieldSelect, Required: true, Options: platformOptions},
			{Name: "analysisType", Label: "Analysis Type", Kind: FieldSelect, Required: true, Options: []string{"Content Strategy", "Growth Analysis", "Engagement", "Thumbnail Style", "Full Analysis"}},
		},
		Prompt: func(p Params) string {
			return fmt.Sprintf(`Analyze this competitor:
Competitor: %s
Platform: %s
Analysis Type: %s

Include: Content strategy, strengths/weaknesses, opportunities, and differentiation ideas.`,
				str(p, "competitorName"), str(p, "platform"), str(p, "analysisType"))
		},
	},
	{
		Slug:  "personas",
		Name:  "audience persona",
		Table: "personas",
		Fields: []Field{
			{Name: "niche", Label: "Your Niche", Kind: FieldText, Required: true},
			{Name: "platform", Label: "Primary Platform", Kind: FieldSelect, Required: true, Options: []string{"YouTube", "TikTok", "Instagram", "Multiple"}},
			{Name: "demographics", Label: "Known Demographics", Kind: FieldText},
			{Name: "interests", Label: "Audience Interests", Kind: FieldText},
		},
		Prompt: func(p Params) string {
			return fmt.Sprintf(`Create a detailed audience persona for:
Niche: %s
Platform: %s
Demographics: %s

Include: Demographics, psychographics, pain points, content preferences, and engagement patterns.`,
				str(p, "niche"), str(p, "platform"), str(p, "demographics"))
		},
	},
	{
		Slug:  "repurpose",
		Name:  "repurposed content",
		Table: "repurposed_contents",
		Fields: []Field{
			{Name: "originalContent", Label: "Original Content", Kind: FieldTextarea, Required: true},
			{Name: "sourcePlatform", Label: "Source Platform", Kind: FieldSelect, Required: true, Options: []string{"YouTube", "TikTok", "Instagram", "Blog", "Podcast"}},
			{Name: "targetPlatform", Label: "Target Platform", Kind: FieldSelect, Required: true, Options: []string{"YouTube", "TikTok", "Instagram", "Twitter", "LinkedIn", "Blog"}},
			{Name: "contentType", Label: "Content Type", Kind: FieldSelect, Required: true, Options: []string{"Video Script", "Blog Post", "Social Post", "Thread"}},
		},
		Prompt: func(p Params) string {
			return fmt.Sprintf(`Repurpose this content:
Original Content: %s
From: %s
To: %s

Adapt the content for the target platform's format, audience, and best practices.`,
				str(p, "originalContent"), str(p, "sourcePlatform"), str(p, "targetPlatform"))
		},
	},
}
