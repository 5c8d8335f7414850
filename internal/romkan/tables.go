package romkan

// hiraganaEntries is the romaji to hiragana table.
var hiraganaEntries = map[string]string{
	"": "っ",
	"a": "あ", "i": "い", "u": "う", "e": "え", "o": "お",
	"ba": "ば", "bi": "び", "bu": "ぶ", "be": "べ", "bo": "ぼ",
	"bya": "びゃ", "byi": "びぃ", "byu": "びゅ", "bye": "びぇ", "byo": "びょ",
	"ca": "か", "ci": "し", "cu": "く", "ce": "せ", "co": "こ",
	"cha": "ちゃ", "chi": "ち", "chu": "ちゅ", "che": "ちぇ", "cho": "ちょ",
	"cya": "ちゃ", "cyi": "ちぃ", "cyu": "ちゅ", "cye": "ちぇ", "cyo": "ちょ",
	"da": "だ", "di": "ぢ", "du": "づ", "de": "で", "do": "ど",
	"dha": "でゃ", "dhi": "でぃ", "dhu": "でゅ", "dhe": "でぇ", "dho": "でょ",
	"dwa": "どぁ", "dwi": "どぃ", "dwu": "どぅ", "dwe": "どぇ", "dwo": "どぉ",
	"dya": "ぢゃ", "dyi": "ぢぃ", "dyu": "ぢゅ", "dye": "ぢぇ", "dyo": "ぢょ",
	"fa": "ふぁ", "fi": "ふぃ", "fu": "ふ", "fe": "ふぇ", "fo": "ふぉ",
	"fwa": "ふぁ", "fwi": "ふぃ", "fwu": "ふぅ", "fwe": "ふぇ", "fwo": "ふぉ",
	"fya": "ふゃ", "fyi": "ふぃ", "fyu": "ふゅ", "fye": "ふぇ", "fyo": "ふょ",
	"ga": "が", "gi": "ぎ", "gu": "ぐ", "ge": "げ", "go": "ご",
	"gwa": "ぐぁ", "gwi": "ぐぃ", "gwu": "ぐぅ", "gwe": "ぐぇ", "gwo": "ぐぉ",
	"gya": "ぎゃ", "gyi": "ぎぃ", "gyu": "ぎゅ", "gye": "ぎぇ", "gyo": "ぎょ",
	"ha": "は", "hi": "ひ", "hu": "ふ", "he": "へ", "ho": "ほ",
	"hya": "ひゃ", "hyi": "ひぃ", "hyu": "ひゅ", "hye": "ひぇ", "hyo": "ひょ",
	"ja": "じゃ", "ji": "じ", "ju": "じゅ", "je": "じぇ", "jo": "じょ",
	"jya": "じゃ", "jyi": "じぃ", "jyu": "じゅ", "jye": "じぇ", "jyo": "じょ",
	"ka": "か", "ki": "き", "ku": "く", "ke": "け", "ko": "こ",
	"kya": "きゃ", "kyi": "きぃ", "kyu": "きゅ", "kye": "きぇ", "kyo": "きょ",
	"kwa": "くぁ",
	"la": "ぁ", "li": "ぃ", "lu": "ぅ", "le": "ぇ", "lo": "ぉ",
	"lya": "ゃ", "lyi": "ぃ", "lyu": "ゅ", "lye": "ぇ", "lyo": "ょ",
	"ltsu": "っ",
	"ltu": "っ",
	"lwa": "ゎ",
	"ma": "ま", "mi": "み", "mu": "む", "me": "め", "mo": "も",
	"mya": "みゃ", "myi": "みぃ", "myu": "みゅ", "mye": "みぇ", "myo": "みょ",
	"na": "な", "ni": "に", "nu": "ぬ", "ne": "ね", "no": "の",
	"nya": "にゃ", "nyi": "にぃ", "nyu": "にゅ", "nye": "にぇ", "nyo": "にょ",
	"pa": "ぱ", "pi": "ぴ", "pu": "ぷ", "pe": "ぺ", "po": "ぽ",
	"pya": "ぴゃ", "pyi": "ぴぃ", "pyu": "ぴゅ", "pye": "ぴぇ", "pyo": "ぴょ",
	"qa": "くぁ", "qi": "くぃ", "qu": "く", "qe": "くぇ", "qo": "くぉ",
	"qwa": "くぁ", "qwi": "くぃ", "qwu": "くぅ", "qwe": "くぇ", "qwo": "くぉ",
	"qya": "くゃ", "qyi": "くぃ", "qyu": "くゅ", "qye": "くぇ", "qyo": "くょ",
	"ra": "ら", "ri": "り", "ru": "る", "re": "れ", "ro": "ろ",
	"rya": "りゃ", "ryi": "りぃ", "ryu": "りゅ", "rye": "りぇ", "ryo": "りょ",
	"sa": "さ", "si": "し", "su": "す", "se": "せ", "so": "そ",
	"sha": "しゃ", "shi": "し", "shu": "しゅ", "she": "しぇ", "sho": "しょ",
	"swa": "すぁ", "swi": "すぃ", "swu": "すぅ", "swe": "すぇ", "swo": "すぉ",
	"sya": "しゃ", "syi": "しぃ", "syu": "しゅ", "sye": "しぇ", "syo": "しょ",
	"ta": "た", "ti": "ち", "tu": "つ", "to": "と", "te": "て",
	"tha": "てゃ", "thi": "てぃ", "thu": "てゅ", "the": "てぇ", "tho": "てょ",
	"tsa": "つぁ", "tsi": "つぃ", "tsu": "つ", "tse": "つぇ", "tso": "つぉ",
	"twa": "とぁ", "twi": "とぃ", "twu": "とぅ", "twe": "とぇ", "two": "とぉ",
	"tya": "ちゃ", "tyi": "ちぃ", "tyu": "ちゅ", "tye": "ちぇ", "tyo": "ちょ",
	"va": "ゔぁ", "vi": "ゔぃ", "vu": "ゔ", "ve": "ゔぇ", "vo": "ゔぉ",
	"vya": "ゔゃ", "vyi": "ゔぃ", "vyu": "ゔゅ", "vye": "ゔぇ", "vyo": "ゔょ",
	"wa": "わ", "wi": "うぃ", "wu": "う", "we": "うぇ", "wo": "を",
	"wha": "うぁ", "whi": "うぃ", "whu": "う", "whe": "うぇ", "who": "うぉ",
	"xa": "ぁ", "xi": "ぃ", "xu": "ぅ", "xe": "ぇ", "xo": "ぉ",
	"xya": "ゃ", "xyi": "ぃ", "xyu": "ゅ", "xye": "ぇ", "xyo": "ょ",
	"xn": "ん",
	"xtu": "っ",
	"xwa": "ゎ",
	"ya": "や", "yi": "い", "yu": "ゆ", "ye": "いぇ", "yo": "よ",
	"za": "ざ", "zi": "じ", "zu": "ず", "ze": "ぜ", "zo": "ぞ",
	"zya": "じゃ", "zyi": "じぃ", "zyu": "じゅ", "zye": "じぇ", "zyo": "じょ",
	"bb": "っb",
	"cc": "っc",
	"dd": "っd",
	"ff": "っf",
	"gg": "っg",
	"hh": "っh",
	"jj": "っj",
	"kk": "っk",
	"ll": "っl",
	"mm": "っm",
	"pp": "っp",
	"qq": "っq",
	"rr": "っr",
	"ss": "っs",
	"tt": "っt",
	"vv": "っv",
	"ww": "っw",
	"xx": "っx",
	"yy": "っy",
	"zz": "っz",
	"nb": "んb",
	"nc": "んc",
	"nd": "んd",
	"nf": "んf",
	"ng": "んg",
	"nh": "んh",
	"nj": "んj",
	"nk": "んk",
	"nl": "んl",
	"nm": "んm",
	"nn": "ん",
	"np": "んp",
	"nq": "んq",
	"nr": "んr",
	"ns": "んs",
	"nt": "んt",
	"nv": "んv",
	"nw": "んw",
	"nx": "んx",
	"nz": "んz",
	"!": "！",
	"#": "＃",
	"$": "＄",
	"%": "％",
	"&": "＆",
	"'": "＇",
	"(": "（",
	")": "）",
	"*": "＊",
	"+": "＋",
	",": "、",
	"-": "ー",
	".": "。",
	"/": "・",
	"0": "０",
	"1": "１",
	"2": "２",
	"3": "３",
	"4": "４",
	"5": "５",
	"6": "６",
	"7": "７",
	"8": "８",
	"9": "９",
	":": "：",
	";": "；",
	"<": "＜",
	"=": "＝",
	">": "＞",
	"?": "？",
	"@": "＠",
	"[": "「",
	"\"": "＂",
	"\\": "＼",
	"]": "」",
	"^": "＾",
	"_": "＿",
	"`": "｀",
	"{": "｛",
	"|": "｜",
	"}": "｝",
	"~": "～",
	"¥": "￥",
}

// fullKatakanaEntries is the romaji to full-width katakana table.
var fullKatakanaEntries = map[string]string{
	"": "ッ",
	"a": "ア", "i": "イ", "u": "ウ", "e": "エ", "o": "オ",
	"ba": "バ", "bi": "ビ", "bu": "ブ", "be": "ベ", "bo": "ボ",
	"bya": "ビャ", "byi": "ビィ", "byu": "ビュ", "bye": "ビェ", "byo": "ビョ",
	"ca": "カ", "ci": "シ", "cu": "ク", "ce": "セ", "co": "コ",
	"cha": "チャ", "chi": "チ", "chu": "チュ", "che": "チェ", "cho": "チョ",
	"cya": "チャ", "cyi": "チィ", "cyu": "チュ", "cye": "チェ", "cyo": "チョ",
	"da": "ダ", "di": "ヂ", "du": "ヅ", "de": "デ", "do": "ド",
	"dha": "デャ", "dhi": "ディ", "dhu": "デュ", "dhe": "デェ", "dho": "デョ",
	"dwa": "ドァ", "dwi": "ドィ", "dwu": "ドゥ", "dwe": "ドェ", "dwo": "ドォ",
	"dya": "ヂャ", "dyi": "ヂィ", "dyu": "ヂュ", "dye": "ヂェ", "dyo": "ヂョ",
	"fa": "ファ", "fi": "フィ", "fu": "フ", "fe": "フェ", "fo": "フォ",
	"fwa": "ファ", "fwi": "フィ", "fwu": "フゥ", "fwe": "フェ", "fwo": "フォ",
	"fya": "フャ", "fyi": "フィ", "fyu": "フュ", "fye": "フェ", "fyo": "フョ",
	"ga": "ガ", "gi": "ギ", "gu": "グ", "ge": "ゲ", "go": "ゴ",
	"gwa": "グァ", "gwi": "グィ", "gwu": "グゥ", "gwe": "グェ", "gwo": "グォ",
	"gya": "ギャ", "gyi": "ギィ", "gyu": "ギュ", "gye": "ギェ", "gyo": "ギョ",
	"ha": "ハ", "hi": "ヒ", "hu": "フ", "he": "ヘ", "ho": "ホ",
	"hya": "ヒャ", "hyi": "ヒィ", "hyu": "ヒュ", "hye": "ヒェ", "hyo": "ヒョ",
	"ja": "ジャ", "ji": "ジ", "ju": "ジュ", "je": "ジェ", "jo": "ジョ",
	"jya": "ジャ", "jyi": "ジィ", "jyu": "ジュ", "jye": "ジェ", "jyo": "ジョ",
	"ka": "カ", "ki": "キ", "ku": "ク", "ke": "ケ", "ko": "コ",
	"kya": "キャ", "kyi": "キィ", "kyu": "キュ", "kye": "キェ", "kyo": "キョ",
	"kwa": "クァ",
	"la": "ァ", "li": "ィ", "lu": "ゥ", "le": "ェ", "lo": "ォ",
	"lya": "ャ", "lyi": "ィ", "lyu": "ュ", "lye": "ェ", "lyo": "ョ",
	"lka": "ヵ",
	"lke": "ヶ",
	"ltsu": "ッ",
	"ltu": "ッ",
	"lwa": "ヮ",
	"ma": "マ", "mi": "ミ", "mu": "ム", "me": "メ", "mo": "モ",
	"mya": "ミャ", "myi": "ミィ", "myu": "ミュ", "mye": "ミェ", "myo": "ミョ",
	"na": "ナ", "ni": "ニ", "nu": "ヌ", "ne": "ネ", "no": "ノ",
	"nya": "ニャ", "nyi": "ニィ", "nyu": "ニュ", "nye": "ニェ", "nyo": "ニョ",
	"pa": "パ", "pi": "ピ", "pu": "プ", "pe": "ペ", "po": "ポ",
	"pya": "ピャ", "pyi": "ピィ", "pyu": "ピュ", "pye": "ピェ", "pyo": "ピョ",
	"qa": "クァ", "qi": "クィ", "qu": "ク", "qe": "クェ", "qo": "クォ",
	"qwa": "クァ", "qwi": "クィ", "qwu": "クゥ", "qwe": "クェ", "qwo": "クォ",
	"qya": "クャ", "qyi": "クィ", "qyu": "クュ", "qye": "クェ", "qyo": "クョ",
	"ra": "ラ", "ri": "リ", "ru": "ル", "re": "レ", "ro": "ロ",
	"rya": "リャ", "ryi": "リィ", "ryu": "リュ", "rye": "リェ", "ryo": "リョ",
	"sa": "サ", "si": "シ", "su": "ス", "se": "セ", "so": "ソ",
	"sha": "シャ", "shi": "シ", "shu": "シュ", "she": "シェ", "sho": "ショ",
	"swa": "スァ", "swi": "スィ", "swu": "スゥ", "swe": "スェ", "swo": "スォ",
	"sya": "シャ", "syi": "シィ", "syu": "シュ", "sye": "シェ", "syo": "ショ",
	"ta": "タ", "ti": "チ", "tu": "ツ", "te": "テ", "to": "ト",
	"tha": "テャ", "thi": "ティ", "thu": "テュ", "the": "テェ", "tho": "テョ",
	"tsa": "ツァ", "tsi": "ツィ", "tsu": "ツ", "tse": "ツェ", "tso": "ツォ",
	"twa": "トァ", "twi": "トィ", "twu": "トゥ", "twe": "トェ", "two": "トォ",
	"tya": "チャ", "tyi": "チィ", "tyu": "チュ", "tye": "チェ", "tyo": "チョ",
	"va": "ヴァ", "vi": "ヴィ", "vu": "ヴ", "ve": "ヴェ", "vo": "ヴォ",
	"vya": "ヴャ", "vyi": "ヴィ", "vyu": "ヴュ", "vye": "ヴェ", "vyo": "ヴョ",
	"wa": "ワ", "wi": "ウィ", "wu": "ウ", "we": "ウェ", "wo": "ヲ",
	"wha": "ウァ", "whi": "ウィ", "whu": "ウ", "whe": "ウェ", "who": "ウォ",
	"xa": "ァ", "xi": "ィ", "xu": "ゥ", "xe": "ェ", "xo": "ォ",
	"xya": "ャ", "xyi": "ィ", "xyu": "ュ", "xye": "ェ", "xyo": "ョ",
	"xn": "ン",
	"xka": "ヵ",
	"xke": "ヶ",
	"xtu": "ッ",
	"xwa": "ヮ",
	"ya": "ヤ", "yi": "イ", "yu": "ユ", "ye": "イェ", "yo": "ヨ",
	"za": "ザ", "zi": "ジ", "zu": "ズ", "ze": "ゼ", "zo": "ゾ",
	"zya": "ジャ", "zyi": "ジィ", "zyu": "ジュ", "zye": "ジェ", "zyo": "ジョ",
	"bb": "ッb",
	"cc": "ッc",
	"dd": "ッd",
	"ff": "ッf",
	"gg": "ッg",
	"hh": "ッh",
	"jj": "ッj",
	"kk": "ッk",
	"ll": "ッl",
	"mm": "ッm",
	"pp": "ッp",
	"qq": "ッq",
	"rr": "ッr",
	"ss": "ッs",
	"tt": "ッt",
	"vv": "ッv",
	"ww": "ッw",
	"xx": "ッx",
	"yy": "ッy",
	"zz": "ッz",
	"nb": "ンb",
	"nc": "ンc",
	"nd": "ンd",
	"nf": "ンf",
	"ng": "ンg",
	"nh": "ンh",
	"nj": "ンj",
	"nk": "ンk",
	"nm": "ンm",
	"nn": "ン",
	"np": "ンp",
	"nq": "ンq",
	"nr": "ンr",
	"ns": "ンs",
	"nt": "ンt",
	"nv": "ンv",
	"nw": "ンw",
	"nx": "ンx",
	"nz": "ンz",
	"nl": "ンl",
	",": "、",
	"-": "ー",
	".": "。",
	"/": "・",
	"?": "？",
}

// halfKatakanaEntries is the romaji to half-width katakana table. Voiced and
// semi-voiced syllables are a base kana followed by a separate sound mark.
var halfKatakanaEntries = map[string]string{
	"": "ｯ",
	"a": "ｱ", "i": "ｲ", "u": "ｳ", "e": "ｴ", "o": "ｵ",
	"ba": "ﾊﾞ", "bi": "ﾋﾞ", "bu": "ﾌﾞ", "be": "ﾍﾞ", "bo": "ﾎﾞ",
	"bya": "ﾋﾞｬ", "byi": "ﾋﾞｨ", "byu": "ﾋﾞｭ", "bye": "ﾋﾞｪ", "byo": "ﾋﾞｮ",
	"ca": "ｶ", "ci": "ｼ", "cu": "ｸ", "ce": "ｾ", "co": "ｺ",
	"cha": "ﾁｬ", "chi": "ﾁ", "chu": "ﾁｭ", "che": "ﾁｪ", "cho": "ﾁｮ",
	"cya": "ﾁｬ", "cyi": "ﾁｨ", "cyu": "ﾁｭ", "cye": "ﾁｪ", "cyo": "ﾁｮ",
	"da": "ﾀﾞ", "di": "ﾁﾞ", "du": "ﾂﾞ", "de": "ﾃﾞ", "do": "ﾄﾞ",
	"dha": "ﾃﾞｬ", "dhi": "ﾃﾞｨ", "dhu": "ﾃﾞｭ", "dhe": "ﾃﾞｪ", "dho": "ﾃﾞｮ",
	"dwa": "ﾄﾞｧ", "dwi": "ﾄﾞｨ", "dwu": "ﾄﾞｩ", "dwe": "ﾄﾞｪ", "dwo": "ﾄﾞｫ",
	"dya": "ﾁﾞｬ", "dyi": "ﾁﾞｨ", "dyu": "ﾁﾞｭ", "dye": "ﾁﾞｪ", "dyo": "ﾁﾞｮ",
	"fa": "ﾌｧ", "fi": "ﾌｨ", "fu": "ﾌ", "fe": "ﾌｪ", "fo": "ﾌｫ",
	"fwa": "ﾌｧ", "fwi": "ﾌｨ", "fwu": "ﾌｩ", "fwe": "ﾌｪ", "fwo": "ﾌｫ",
	"fya": "ﾌｬ", "fyi": "ﾌｨ", "fyu": "ﾌｭ", "fye": "ﾌｪ", "fyo": "ﾌｮ",
	"ga": "ｶﾞ", "gi": "ｷﾞ", "gu": "ｸﾞ", "ge": "ｹﾞ", "go": "ｺﾞ",
	"gwa": "ｸﾞｧ", "gwi": "ｸﾞｨ", "gwu": "ｸﾞｩ", "gwe": "ｸﾞｪ", "gwo": "ｸﾞｫ",
	"gya": "ｷﾞｬ", "gyi": "ｷﾞｨ", "gyu": "ｷﾞｭ", "gye": "ｷﾞｪ", "gyo": "ｷﾞｮ",
	"ha": "ﾊ", "hi": "ﾋ", "hu": "ﾌ", "he": "ﾍ", "ho": "ﾎ",
	"hya": "ﾋｬ", "hyi": "ﾋｨ", "hyu": "ﾋｭ", "hye": "ﾋｪ", "hyo": "ﾋｮ",
	"ja": "ｼﾞｬ", "ji": "ｼﾞ", "ju": "ｼﾞｭ", "je": "ｼﾞｪ", "jo": "ｼﾞｮ",
	"jya": "ｼﾞｬ", "jyi": "ｼﾞｨ", "jyu": "ｼﾞｭ", "jye": "ｼﾞｪ", "jyo": "ｼﾞｮ",
	"ka": "ｶ", "ki": "ｷ", "ku": "ｸ", "ke": "ｹ", "ko": "ｺ",
	"kya": "ｷｬ", "kyi": "ｷｨ", "kyu": "ｷｭ", "kye": "ｷｪ", "kyo": "ｷｮ",
	"kwa": "ｸｧ",
	"la": "ｧ", "li": "ｨ", "lu": "ｩ", "le": "ｪ", "lo": "ｫ",
	"lya": "ｬ", "lyi": "ｨ", "lyu": "ｭ", "lye": "ｪ", "lyo": "ｮ",
	"ltsu": "ｯ",
	"ltu": "ｯ",
	"lwa": "ﾜ",
	"ma": "ﾏ", "mi": "ﾐ", "mu": "ﾑ", "me": "ﾒ", "mo": "ﾓ",
	"mya": "ﾐｬ", "myi": "ﾐｨ", "myu": "ﾐｭ", "mye": "ﾐｪ", "myo": "ﾐｮ",
	"na": "ﾅ", "ni": "ﾆ", "nu": "ﾇ", "ne": "ﾈ", "no": "ﾉ",
	"nya": "ﾆｬ", "nyi": "ﾆｨ", "nyu": "ﾆｭ", "nye": "ﾆｪ", "nyo": "ﾆｮ",
	"pa": "ﾊﾟ", "pi": "ﾋﾟ", "pu": "ﾌﾟ", "pe": "ﾍﾟ", "po": "ﾎﾟ",
	"pya": "ﾋﾟｬ", "pyi": "ﾋﾟｨ", "pyu": "ﾋﾟｭ", "pye": "ﾋﾟｪ", "pyo": "ﾋﾟｮ",
	"qa": "ｸｧ", "qi": "ｸｨ", "qu": "ｸ", "qe": "ｸｪ", "qo": "ｸｫ",
	"qwa": "ｸｧ", "qwi": "ｸｨ", "qwu": "ｸｩ", "qwe": "ｸｪ", "qwo": "ｸｫ",
	"qya": "ｸｬ", "qyi": "ｸｨ", "qyu": "ｸｭ", "qye": "ｸｪ", "qyo": "ｸｮ",
	"ra": "ﾗ", "ri": "ﾘ", "ru": "ﾙ", "re": "ﾚ", "ro": "ﾛ",
	"rya": "ﾘｬ", "ryi": "ﾘｨ", "ryu": "ﾘｭ", "rye": "ﾘｪ", "ryo": "ﾘｮ",
	"sa": "ｻ", "si": "ｼ", "su": "ｽ", "se": "ｾ", "so": "ｿ",
	"sha": "ｼｬ", "shi": "ｼ", "shu": "ｼｭ", "she": "ｼｪ", "sho": "ｼｮ",
	"swa": "ｽｧ", "swi": "ｽｨ", "swu": "ｽｩ", "swe": "ｽｪ", "swo": "ｽｫ",
	"sya": "ｼｬ", "syi": "ｼｨ", "syu": "ｼｭ", "sye": "ｼｪ", "syo": "ｼｮ",
	"ta": "ﾀ", "ti": "ﾁ", "tu": "ﾂ", "te": "ﾃ", "to": "ﾄ",
	"tha": "ﾃｬ", "thi": "ﾃｨ", "thu": "ﾃｭ", "the": "ﾃｪ", "tho": "ﾃｮ",
	"tsa": "ﾂｧ", "tsi": "ﾂｨ", "tsu": "ﾂ", "tse": "ﾂｪ", "tso": "ﾂｫ",
	"twa": "ﾄｧ", "twi": "ﾄｨ", "twu": "ﾄｩ", "twe": "ﾄｪ", "two": "ﾄｫ",
	"tya": "ﾁｬ", "tyi": "ﾁｨ", "tyu": "ﾁｭ", "tye": "ﾁｪ", "tyo": "ﾁｮ",
	"va": "ｳﾞｧ", "vi": "ｳﾞｨ", "vu": "ｳﾞ", "ve": "ｳﾞｪ", "vo": "ｳﾞｫ",
	"vya": "ｳﾞｬ", "vyi": "ｳﾞｨ", "vyu": "ｳﾞｭ", "vye": "ｳﾞｪ", "vyo": "ｳﾞｮ",
	"wa": "ﾜ", "wi": "ｳｨ", "wu": "ｳ", "we": "ｳｪ", "wo": "ｦ",
	"wha": "ｳｧ", "whi": "ｳｨ", "whu": "ｳ", "whe": "ｳｪ", "who": "ｳｫ",
	"xa": "ｧ", "xi": "ｨ", "xu": "ｩ", "xe": "ｪ", "xo": "ｫ",
	"xya": "ｬ", "xyi": "ｨ", "xyu": "ｭ", "xye": "ｪ", "xyo": "ｮ",
	"xn": "ﾝ",
	"xtu": "ｯ",
	"xwa": "ﾜ",
	"ya": "ﾔ", "yi": "ｲ", "yu": "ﾕ", "ye": "ｲｪ", "yo": "ﾖ",
	"za": "ｻﾞ", "zi": "ｼﾞ", "zu": "ｽﾞ", "ze": "ｾﾞ", "zo": "ｿﾞ",
	"zya": "ｼﾞｬ", "zyi": "ｼﾞｨ", "zyu": "ｼﾞｭ", "zye": "ｼﾞｪ", "zyo": "ｼﾞｮ",
	"bb": "ｯb",
	"cc": "ｯc",
	"dd": "ｯd",
	"ff": "ｯf",
	"gg": "ｯg",
	"hh": "ｯh",
	"jj": "ｯj",
	"kk": "ｯk",
	"ll": "ｯl",
	"mm": "ｯm",
	"pp": "ｯp",
	"qq": "ｯq",
	"rr": "ｯr",
	"ss": "ｯs",
	"tt": "ｯt",
	"vv": "ｯv",
	"ww": "ｯw",
	"xx": "ｯx",
	"yy": "ｯy",
	"zz": "ｯz",
	"nb": "ﾝb",
	"nc": "ﾝc",
	"nd": "ﾝd",
	"nf": "ﾝf",
	"ng": "ﾝg",
	"nh": "ﾝh",
	"nj": "ﾝj",
	"nk": "ﾝk",
	"nm": "ﾝm",
	"nn": "ﾝ",
	"np": "ﾝp",
	"nq": "ﾝq",
	"nr": "ﾝr",
	"ns": "ﾝs",
	"nt": "ﾝt",
	"nv": "ﾝv",
	"nw": "ﾝw",
	"nx": "ﾝx",
	"nz": "ﾝz",
	"nl": "ﾝl",
	"-": "ｰ",
	".": "｡",
	",": "､",
	"/": "･",
}
