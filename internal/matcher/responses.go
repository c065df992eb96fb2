package matcher

// Greeting opens every session.
const Greeting = "Hello! I'm Mish Mish, your style buddy! 🎨 I'm here to help you with color theory, aesthetics, and all things style. What would you like to explore today?"

// colorGate must appear in the input before any color rule is considered.
var colorGate = []string{"color", "colour"}

// colorRules are checked in order; the temperature rules come before the
// specific hues so "warm colors like red" gets the warm answer.
var colorRules = []Rule{
	{
		Name:     "warm",
		Keywords: []string{"warm"},
		Reply:    "Warm colors like reds, oranges, and yellows create energy and intimacy! They advance visually and make spaces feel cozy. Perfect for social areas like living rooms and dining spaces. ✨",
	},
	{
		Name:     "cool",
		Keywords: []string{"cool"},
		Reply:    "Cool colors like blues, greens, and purples are calming and recede visually, making spaces feel larger. They're perfect for bedrooms and work spaces where you want tranquility! 💙",
	},
	{
		Name:     "neutral",
		Keywords: []string{"neutral"},
		Reply:    "Neutrals are your best friends! Beiges, grays, and whites create a timeless foundation. The 60-30-10 rule: 60% neutral base, 30% secondary color, 10% bold accent. Perfect balance! 🤍",
	},
	{
		Name:     "complementary",
		Keywords: []string{"complementary"},
		Reply:    "Complementary colors sit opposite on the color wheel - like red & green, blue & orange! They create vibrant contrast and visual pop. Use sparingly for maximum impact! 🎯",
	},
	{
		Name:     "red",
		Words:    true,
		Keywords: []string{"red"},
		Reply:    "Red is pure confidence! It raises energy and appetite, so it shines in dining rooms and as a statement piece in an outfit. Balance it with soft neutrals so it doesn't overwhelm. ❤️",
	},
	{
		Name:     "orange",
		Words:    true,
		Keywords: []string{"orange", "terracotta"},
		Reply:    "Orange brings warmth and playfulness! Burnt orange and terracotta feel earthy and grown-up - try them in cushions, ceramics, or a knit sweater paired with cream. 🧡",
	},
	{
		Name:     "yellow",
		Words:    true,
		Keywords: []string{"yellow", "mustard"},
		Reply:    "Yellow is sunshine in a room! Use buttery tones on walls or mustard as an accent. In fashion, a yellow piece near the face brightens any look. 💛",
	},
	{
		Name:     "green",
		Words:    true,
		Keywords: []string{"green", "sage", "olive"},
		Reply:    "Green is nature's neutral! Sage and olive pair beautifully with wood and linen, and they're easy to wear with denim, camel, and white. 🌿",
	},
	{
		Name:     "blue",
		Words:    true,
		Keywords: []string{"blue", "navy"},
		Reply:    "Blue is calm and trustworthy! Navy works as a softer alternative to black, while powder blue makes small rooms feel airy. Pair it with brass or tan leather for warmth. 💙",
	},
	{
		Name:     "purple",
		Words:    true,
		Keywords: []string{"purple", "lavender", "lilac"},
		Reply:    "Purple feels creative and luxurious! Deep plum adds drama to velvet pieces, while lavender keeps things dreamy and light. Pair with gray or gold. 💜",
	},
	{
		Name:     "pink",
		Words:    true,
		Keywords: []string{"pink", "blush"},
		Reply:    "Pink is so versatile! Blush reads almost neutral next to gray and white, while hot pink is a joyful accent. Try it with olive green for a fresh, modern pairing. 🌸",
	},
	{
		Name:     "black",
		Words:    true,
		Keywords: []string{"black"},
		Reply:    "Black grounds everything! Use it in frames, hardware, or a little black dress to add definition. Keep it to accents in small rooms so the space stays open. 🖤",
	},
	{
		Name:     "white",
		Words:    true,
		Keywords: []string{"white", "cream", "ivory"},
		Reply:    "Whites are never boring! Warm whites and creams feel inviting, crisp whites feel modern. Layer different textures so an all-white look stays rich, not flat. 🤍",
	},
	{
		Name:     "color",
		Keywords: colorGate,
		Reply:    "Colors have amazing psychological effects! Warm tones energize, cool tones calm, and neutrals ground. What specific color palette are you considering? I'd love to help you choose! 🌈",
	},
}

// styleRules cover aesthetics, spaces and outfits, in priority order.
var styleRules = []Rule{
	{
		Name:     "minimalist",
		Keywords: []string{"minimalist", "minimal"},
		Reply:    "Minimalism is all about 'less is more'! Focus on clean lines, functional pieces, and negative space. Stick to a neutral palette with maybe one accent color. Quality over quantity always! ✨",
	},
	{
		Name:     "cozy",
		Keywords: []string{"cozy", "hygge"},
		Reply:    "Cozy vibes are created through warm textures, soft lighting, and earthy tones! Think layered textiles, warm woods, and candlelight. Add plants for that lived-in, nurturing feel! 🕯️",
	},
	{
		Name:     "modern",
		Keywords: []string{"modern", "contemporary"},
		Reply:    "Modern style loves clean geometry, mixed materials, and bold contrasts! Try pairing sleek metals with natural wood, or crisp whites with one dramatic accent wall. Less ornamentation, more impact! 🏢",
	},
	{
		Name:     "bohemian",
		Keywords: []string{"bohemian", "boho"},
		Reply:    "Boho style is about layered textures, rich jewel tones, and collected treasures! Mix patterns confidently, add plants everywhere, and don't forget metallic accents for glamour! ✨🌿",
	},
	{
		Name:     "scandinavian",
		Keywords: []string{"scandinavian", "scandi", "nordic"},
		Reply:    "Scandinavian style is light, airy, and practical! Pale woods, white walls, soft wool throws, and simple shapes. Keep clutter hidden and let natural light do the work. 🌲",
	},
	{
		Name:     "industrial",
		Keywords: []string{"industrial", "loft"},
		Reply:    "Industrial style celebrates raw materials! Exposed brick, black steel, concrete, and reclaimed wood. Soften it with leather, warm Edison bulbs, and a big textured rug. 🏭",
	},
	{
		Name:     "small space",
		Keywords: []string{"small space", "tiny"},
		Reply:    "Small spaces can feel huge with the right tricks! Use light colors to reflect light, mirrors to double visual space, and vertical storage. Multi-functional furniture is your secret weapon! 📏",
	},
	{
		Name:     "lighting",
		Keywords: []string{"lighting"},
		Reply:    "Lighting transforms everything! Layer your lighting: ambient (general), task (functional), and accent (mood). Warm light (2700K-3000K) feels cozy, cool light (4000K+) energizes! 💡",
	},
	{
		Name:     "outfit",
		Keywords: []string{"outfit", "what to wear", "dress for"},
		Reply:    "Let's build a look! Start with one hero piece, keep the rest in two or three coordinating tones, and finish with a texture contrast - like knit with leather or silk with denim. 👗",
	},
	{
		Name:     "capsule wardrobe",
		Keywords: []string{"capsule", "wardrobe"},
		Reply:    "A capsule wardrobe is minimalism for your closet! Pick a base of neutrals, add two accent colors, and make sure every top works with every bottom. Fewer pieces, endless outfits! 🧥",
	},
	{
		Name:     "accessories",
		Keywords: []string{"accessor", "jewelry", "jewellery", "handbag"},
		Reply:    "Accessories are the finishing touch! Match your metals, repeat one color from your outfit in a bag or scarf, and let a single statement piece lead. 💍",
	},
	{
		Name:     "catalog",
		Keywords: []string{"catalog", "shop", "store"},
		Reply:    "I'd love to look at a catalog with you! Paste the full link to the shop page (starting with https://) and I'll take a peek. 🛍️",
	},
}

// roomRules are consulted against recent history when nothing else matched.
var roomRules = []Rule{
	{
		Name:     "living room",
		Keywords: []string{"living room", "lounge"},
		Reply:    "For your living room, anchor the space with a rug large enough for the front legs of every seat, then layer lighting and textiles around it. Conversation first, TV second! 🛋️",
	},
	{
		Name:     "bedroom",
		Keywords: []string{"bedroom"},
		Reply:    "For your bedroom, keep things restful: soft cool or muted tones, warm bedside lighting, and natural fabrics like linen and cotton. Less clutter, better sleep! 🛏️",
	},
	{
		Name:     "kitchen",
		Keywords: []string{"kitchen"},
		Reply:    "For your kitchen, think durable and bright! Light cabinetry, one warm metal for hardware, and under-cabinet task lighting make it practical and welcoming. 🍳",
	},
	{
		Name:     "bathroom",
		Keywords: []string{"bathroom"},
		Reply:    "For your bathroom, treat it like a mini spa: calm colors, fluffy towels in one tone, a plant that loves humidity, and warm lighting around the mirror. 🛁",
	},
	{
		Name:     "office",
		Keywords: []string{"office", "workspace", "desk"},
		Reply:    "For your workspace, focus on good task lighting, a calming color like sage or soft blue, and closed storage so your eyes can rest. Productivity loves order! 💻",
	},
	{
		Name:     "dining",
		Keywords: []string{"dining"},
		Reply:    "For your dining area, a statement pendant over the table sets the mood. Warm tones encourage lingering, and mixing chairs can add personality! 🍽️",
	},
}

// DefaultResponses are used when no rule matches.
var DefaultResponses = []string{
	"That's an interesting style question! Remember, the best spaces reflect your personality. What aesthetic speaks to your soul? 💫",
	"Style is so personal! I love helping people discover their unique aesthetic. Tell me more about what inspires you! 🎨",
	"Great question! The key to any beautiful space is balance - between colors, textures, and proportions. What area are you styling? ✨",
	"I'm excited to help with your style journey! Every beautiful space starts with understanding what makes you feel happy and peaceful. 🏡",
}
