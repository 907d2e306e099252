package refdata

var topics = []Topic{
	{
		Name:     "Politics",
		Entities: []string{"Donald Trump", "Joe Biden", "Vladimir Putin", "Xi Jinping"},
		Subtopics: []Subtopic{
			{Template: "{ENTITY} makes a surprise announcement on global diplomacy"},
			{Template: "{ENTITY} criticizes economic policies in new speech"},
			{Template: "{ENTITY} warns of rising geopolitical tension"},
		},
	},
	{
		Name:     "Economy",
		Entities: []string{"Federal Reserve", "ECB", "Bank of Japan"},
		Subtopics: []Subtopic{
			{Template: "{ENTITY} releases new inflation forecast"},
			{Template: "{ENTITY} hints at possible rate cuts"},
			{Template: "{ENTITY} announces tightening measures"},
		},
	},
	{
		Name:     "Tech",
		Entities: []string{"Apple", "Google", "Microsoft", "OpenAI"},
		Subtopics: []Subtopic{
			{Template: "{ENTITY} unveils breakthrough AI initiative"},
			{Template: "{ENTITY} faces regulatory scrutiny"},
			{Template: "{ENTITY} stock surges after strong earnings report"},
		},
	},
}
