package keymode

// Toggle cycle tables, one row per 12-key key in the order 1..9, 0, #.
var cycleTables = map[KeyMode][][]string{
	FullHiragana: {
		{"あ", "い", "う", "え", "お", "ぁ", "ぃ", "ぅ", "ぇ", "ぉ"},
		{"か", "き", "く", "け", "こ"},
		{"さ", "し", "す", "せ", "そ"},
		{"た", "ち", "つ", "て", "と", "っ"},
		{"な", "に", "ぬ", "ね", "の"},
		{"は", "ひ", "ふ", "へ", "ほ"},
		{"ま", "み", "む", "め", "も"},
		{"や", "ゆ", "よ", "ゃ", "ゅ", "ょ"},
		{"ら", "り", "る", "れ", "ろ"},
		{"わ", "を", "ん", "ゎ", "ー"},
		{"、", "。", "？", "！", "・", "\u3000"},
	},
	FullKatakana: {
		{"ア", "イ", "ウ", "エ", "オ", "ァ", "ィ", "ゥ", "ェ", "ォ"},
		{"カ", "キ", "ク", "ケ", "コ"},
		{"サ", "シ", "ス", "セ", "ソ"},
		{"タ", "チ", "ツ", "テ", "ト", "ッ"},
		{"ナ", "ニ", "ヌ", "ネ", "ノ"},
		{"ハ", "ヒ", "フ", "ヘ", "ホ"},
		{"マ", "ミ", "ム", "メ", "モ"},
		{"ヤ", "ユ", "ヨ", "ャ", "ュ", "ョ"},
		{"ラ", "リ", "ル", "レ", "ロ"},
		{"ワ", "ヲ", "ン", "ヮ", "ー"},
		{"、", "。", "？", "！", "・", "\u3000"},
	},
	HalfKatakana: {
		{"ｱ", "ｲ", "ｳ", "ｴ", "ｵ", "ｧ", "ｨ", "ｩ", "ｪ", "ｫ"},
		{"ｶ", "ｷ", "ｸ", "ｹ", "ｺ"},
		{"ｻ", "ｼ", "ｽ", "ｾ", "ｿ"},
		{"ﾀ", "ﾁ", "ﾂ", "ﾃ", "ﾄ", "ｯ"},
		{"ﾅ", "ﾆ", "ﾇ", "ﾈ", "ﾉ"},
		{"ﾊ", "ﾋ", "ﾌ", "ﾍ", "ﾎ"},
		{"ﾏ", "ﾐ", "ﾑ", "ﾒ", "ﾓ"},
		{"ﾔ", "ﾕ", "ﾖ", "ｬ", "ｭ", "ｮ"},
		{"ﾗ", "ﾘ", "ﾙ", "ﾚ", "ﾛ"},
		{"ﾜ", "ｦ", "ﾝ", "ｰ"},
		{"､", "｡", "?", "!", "･", " "},
	},
	FullAlphabet: {
		{"．", "＠", "－", "＿", "／", "：", "～", "１"},
		{"ａ", "ｂ", "ｃ", "Ａ", "Ｂ", "Ｃ", "２"},
		{"ｄ", "ｅ", "ｆ", "Ｄ", "Ｅ", "Ｆ", "３"},
		{"ｇ", "ｈ", "ｉ", "Ｇ", "Ｈ", "Ｉ", "４"},
		{"ｊ", "ｋ", "ｌ", "Ｊ", "Ｋ", "Ｌ", "５"},
		{"ｍ", "ｎ", "ｏ", "Ｍ", "Ｎ", "Ｏ", "６"},
		{"ｐ", "ｑ", "ｒ", "ｓ", "Ｐ", "Ｑ", "Ｒ", "Ｓ", "７"},
		{"ｔ", "ｕ", "ｖ", "Ｔ", "Ｕ", "Ｖ", "８"},
		{"ｗ", "ｘ", "ｙ", "ｚ", "Ｗ", "Ｘ", "Ｙ", "Ｚ", "９"},
		{"－", "０"},
		{"，", "．", "？", "！", "・", "\u3000"},
	},
	HalfAlphabet: {
		{".", "@", "-", "_", "/", ":", "~", "1"},
		{"a", "b", "c", "A", "B", "C", "2"},
		{"d", "e", "f", "D", "E", "F", "3"},
		{"g", "h", "i", "G", "H", "I", "4"},
		{"j", "k", "l", "J", "K", "L", "5"},
		{"m", "n", "o", "M", "N", "O", "6"},
		{"p", "q", "r", "s", "P", "Q", "R", "S", "7"},
		{"t", "u", "v", "T", "U", "V", "8"},
		{"w", "x", "y", "z", "W", "X", "Y", "Z", "9"},
		{"-", "0"},
		{",", ".", "?", "!", ";", " "},
	},
}

// Replace tables for the * key: voiced marks, small kana and case.
var replaceTables = map[KeyMode]map[string]string{
	FullHiragana: {
		"あ": "ぁ", "い": "ぃ", "う": "ぅ", "え": "ぇ", "お": "ぉ",
		"ぁ": "あ", "ぃ": "い", "ぅ": "ヴ", "ぇ": "え", "ぉ": "お",
		"か": "が", "き": "ぎ", "く": "ぐ", "け": "げ", "こ": "ご",
		"が": "か", "ぎ": "き", "ぐ": "く", "げ": "け", "ご": "こ",
		"さ": "ざ", "し": "じ", "す": "ず", "せ": "ぜ", "そ": "ぞ",
		"ざ": "さ", "じ": "し", "ず": "す", "ぜ": "せ", "ぞ": "そ",
		"た": "だ", "ち": "ぢ", "つ": "っ", "て": "で", "と": "ど",
		"だ": "た", "ぢ": "ち", "っ": "づ", "で": "て", "ど": "と",
		"づ": "つ", "ヴ": "う", "は": "ば", "ひ": "び", "ふ": "ぶ",
		"へ": "べ", "ほ": "ぼ", "ば": "ぱ", "び": "ぴ", "ぶ": "ぷ",
		"べ": "ぺ", "ぼ": "ぽ", "ぱ": "は", "ぴ": "ひ", "ぷ": "ふ",
		"ぺ": "へ", "ぽ": "ほ", "や": "ゃ", "ゆ": "ゅ", "よ": "ょ",
		"ゃ": "や", "ゅ": "ゆ", "ょ": "よ", "わ": "ゎ", "ゎ": "わ",
		"゛": "゜", "゜": "゛",
	},
	FullKatakana: {
		"ア": "ァ", "イ": "ィ", "ウ": "ゥ", "エ": "ェ", "オ": "ォ",
		"ァ": "ア", "ィ": "イ", "ゥ": "ヴ", "ェ": "エ", "ォ": "オ",
		"カ": "ガ", "キ": "ギ", "ク": "グ", "ケ": "ゲ", "コ": "ゴ",
		"ガ": "カ", "ギ": "キ", "グ": "ク", "ゲ": "ケ", "ゴ": "コ",
		"サ": "ザ", "シ": "ジ", "ス": "ズ", "セ": "ゼ", "ソ": "ゾ",
		"ザ": "サ", "ジ": "シ", "ズ": "ス", "ゼ": "セ", "ゾ": "ソ",
		"タ": "ダ", "チ": "ヂ", "ツ": "ッ", "テ": "デ", "ト": "ド",
		"ダ": "タ", "ヂ": "チ", "ッ": "ヅ", "デ": "テ", "ド": "ト",
		"ヅ": "ツ", "ヴ": "ウ", "ハ": "バ", "ヒ": "ビ", "フ": "ブ",
		"ヘ": "ベ", "ホ": "ボ", "バ": "パ", "ビ": "ピ", "ブ": "プ",
		"ベ": "ペ", "ボ": "ポ", "パ": "ハ", "ピ": "ヒ", "プ": "フ",
		"ペ": "ヘ", "ポ": "ホ", "ヤ": "ャ", "ユ": "ュ", "ヨ": "ョ",
		"ャ": "ヤ", "ュ": "ユ", "ョ": "ヨ", "ワ": "ヮ", "ヮ": "ワ",
	},
	HalfKatakana: {
		"ｱ": "ｧ", "ｲ": "ｨ", "ｳ": "ｩ", "ｴ": "ｪ", "ｵ": "ｫ",
		"ｧ": "ｱ", "ｨ": "ｲ", "ｩ": "ｳﾞ", "ｪ": "ｴ", "ｫ": "ｵ",
		"ｶ": "ｶﾞ", "ｷ": "ｷﾞ", "ｸ": "ｸﾞ", "ｹ": "ｹﾞ", "ｺ": "ｺﾞ",
		"ｶﾞ": "ｶ", "ｷﾞ": "ｷ", "ｸﾞ": "ｸ", "ｹﾞ": "ｹ", "ｺﾞ": "ｺ",
		"ｻ": "ｻﾞ", "ｼ": "ｼﾞ", "ｽ": "ｽﾞ", "ｾ": "ｾﾞ", "ｿ": "ｿﾞ",
		"ｻﾞ": "ｻ", "ｼﾞ": "ｼ", "ｽﾞ": "ｽ", "ｾﾞ": "ｾ", "ｿﾞ": "ｿ",
		"ﾀ": "ﾀﾞ", "ﾁ": "ﾁﾞ", "ﾂ": "ｯ", "ﾃ": "ﾃﾞ", "ﾄ": "ﾄﾞ",
		"ﾀﾞ": "ﾀ", "ﾁﾞ": "ﾁ", "ｯ": "ﾂﾞ", "ﾃﾞ": "ﾃ", "ﾄﾞ": "ﾄ",
		"ﾂﾞ": "ﾂ", "ﾊ": "ﾊﾞ", "ﾋ": "ﾋﾞ", "ﾌ": "ﾌﾞ", "ﾍ": "ﾍﾞ",
		"ﾎ": "ﾎﾞ", "ﾊﾞ": "ﾊﾟ", "ﾋﾞ": "ﾋﾟ", "ﾌﾞ": "ﾌﾟ", "ﾍﾞ": "ﾍﾟ",
		"ﾎﾞ": "ﾎﾟ", "ﾊﾟ": "ﾊ", "ﾋﾟ": "ﾋ", "ﾌﾟ": "ﾌ", "ﾍﾟ": "ﾍ",
		"ﾎﾟ": "ﾎ", "ﾔ": "ｬ", "ﾕ": "ｭ", "ﾖ": "ｮ", "ｬ": "ﾔ",
		"ｭ": "ﾕ", "ｮ": "ﾖ", "ﾜ": "ﾜ", "ｳﾞ": "ｳ",
	},
	FullAlphabet: {
		"Ａ": "ａ", "Ｂ": "ｂ", "Ｃ": "ｃ", "Ｄ": "ｄ", "Ｅ": "ｅ",
		"ａ": "Ａ", "ｂ": "Ｂ", "ｃ": "Ｃ", "ｄ": "Ｄ", "ｅ": "Ｅ",
		"Ｆ": "ｆ", "Ｇ": "ｇ", "Ｈ": "ｈ", "Ｉ": "ｉ", "Ｊ": "ｊ",
		"ｆ": "Ｆ", "ｇ": "Ｇ", "ｈ": "Ｈ", "ｉ": "Ｉ", "ｊ": "Ｊ",
		"Ｋ": "ｋ", "Ｌ": "ｌ", "Ｍ": "ｍ", "Ｎ": "ｎ", "Ｏ": "ｏ",
		"ｋ": "Ｋ", "ｌ": "Ｌ", "ｍ": "Ｍ", "ｎ": "Ｎ", "ｏ": "Ｏ",
		"Ｐ": "ｐ", "Ｑ": "ｑ", "Ｒ": "ｒ", "Ｓ": "ｓ", "Ｔ": "ｔ",
		"ｐ": "Ｐ", "ｑ": "Ｑ", "ｒ": "Ｒ", "ｓ": "Ｓ", "ｔ": "Ｔ",
		"Ｕ": "ｕ", "Ｖ": "ｖ", "Ｗ": "ｗ", "Ｘ": "ｘ", "Ｙ": "ｙ",
		"ｕ": "Ｕ", "ｖ": "Ｖ", "ｗ": "Ｗ", "ｘ": "Ｘ", "ｙ": "Ｙ",
		"Ｚ": "ｚ", "ｚ": "Ｚ",
	},
	HalfAlphabet: {
		"A": "a", "B": "b", "C": "c", "D": "d", "E": "e",
		"a": "A", "b": "B", "c": "C", "d": "D", "e": "E",
		"F": "f", "G": "g", "H": "h", "I": "i", "J": "j",
		"f": "F", "g": "G", "h": "H", "i": "I", "j": "J",
		"K": "k", "L": "l", "M": "m", "N": "n", "O": "o",
		"k": "K", "l": "L", "m": "M", "n": "N", "o": "O",
		"P": "p", "Q": "q", "R": "r", "S": "s", "T": "t",
		"p": "P", "q": "Q", "r": "R", "s": "S", "t": "T",
		"U": "u", "V": "v", "W": "w", "X": "x", "Y": "y",
		"u": "U", "v": "V", "w": "W", "x": "X", "y": "Y",
		"Z": "z", "z": "Z",
	},
}

// Instant tables for the number modes, indexed like the cycle tables with * last.
var instantTables = map[KeyMode][]string{
	FullNumber: {"１", "２", "３", "４", "５", "６", "７", "８", "９", "０", "＃", "＊"},
	HalfNumber: {"1", "2", "3", "4", "5", "6", "7", "8", "9", "0", "#", "*"},
}
