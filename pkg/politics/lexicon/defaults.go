package lexicon

// english is the default contraction table, ordered as it is matched.
var english = []Contraction{
	{Contracted: "aren't", Expanded: "are not"},
	{Contracted: "can't", Expanded: "cannot"},
	{Contracted: "can't've", Expanded: "cannot have"},
	{Contracted: "'cause", Expanded: "because"},
	{Contracted: "could've", Expanded: "could have"},
	{Contracted: "couldn't", Expanded: "could not"},
	{Contracted: "couldn't've", Expanded: "could not have"},
	{Contracted: "didn't", Expanded: "did not"},
	{Contracted: "doesn't", Expanded: "does not"},
	{Contracted: "don't", Expanded: "do not"},
	{Contracted: "hadn't", Expanded: "had not"},
	{Contracted: "hadn't've", Expanded: "had not have"},
	{Contracted: "hasn't", Expanded: "has not"},
	{Contracted: "haven't", Expanded: "have not"},
	{Contracted: "he'd", Expanded: "he had"},
	{Contracted: "he'd've", Expanded: "he would have"},
	{Contracted: "he'll", Expanded: "he will"},
	{Contracted: "he'll've", Expanded: "he will have"},
	{Contracted: "he's", Expanded: "he is"},
	{Contracted: "how'd", Expanded: "how did"},
	{Contracted: "how'd'y", Expanded: "how did you"},
	{Contracted: "how'll", Expanded: "how will"},
	{Contracted: "how's", Expanded: "how is"},
	{Contracted: "i'd", Expanded: "i had"},
	{Contracted: "i'd've", Expanded: "i would have"},
	{Contracted: "i'll", Expanded: "i will"},
	{Contracted: "i'll've", Expanded: "i will have"},
	{Contracted: "i'm", Expanded: "i am"},
	{Contracted: "i've", Expanded: "i have"},
	{Contracted: "isn't", Expanded: "is not"},
	{Contracted: "it'd", Expanded: "it had"},
	{Contracted: "it'd've", Expanded: "it would have"},
	{Contracted: "it'll", Expanded: "it will"},
	{Contracted: "it'll've", Expanded: "it will have"},
	{Contracted: "it's", Expanded: "it is"},
	{Contracted: "let's", Expanded: "let us"},
	{Contracted: "ma'am", Expanded: "madam"},
	{Contracted: "might've", Expanded: "might have"},
	{Contracted: "mightn't", Expanded: "might not"},
	{Contracted: "mightn't've", Expanded: "might not have"},
	{Contracted: "must've", Expanded: "must have"},
	{Contracted: "mustn't", Expanded: "must not"},
	{Contracted: "mustn't've", Expanded: "must not have"},
	{Contracted: "needn't", Expanded: "need not"},
	{Contracted: "o'clock", Expanded: "of the clock"},
	{Contracted: "oughtn't", Expanded: "ought not"},
	{Contracted: "oughtn't've", Expanded: "ought not have"},
	{Contracted: "shan't", Expanded: "shall not"},
	{Contracted: "shan't've", Expanded: "shall not have"},
	{Contracted: "she'd", Expanded: "she had"},
	{Contracted: "she'd've", Expanded: "she would have"},
	{Contracted: "she'll", Expanded: "she will"},
	{Contracted: "she'll've", Expanded: "she will have"},
	{Contracted: "she's", Expanded: "she is"},
	{Contracted: "should've", Expanded: "should have"},
	{Contracted: "shouldn't", Expanded: "should not"},
	{Contracted: "shouldn't've", Expanded: "should not have"},
	{Contracted: "so's", Expanded: "so is"},
	{Contracted: "that's", Expanded: "that is"},
	{Contracted: "there'd", Expanded: "there would"},
	{Contracted: "there's", Expanded: "there is"},
	{Contracted: "they'd", Expanded: "they would"},
	{Contracted: "they'll", Expanded: "they will"},
	{Contracted: "they'll've", Expanded: "they will have"},
	{Contracted: "they're", Expanded: "they are"},
	{Contracted: "they've", Expanded: "they have"},
	{Contracted: "to've", Expanded: "to have"},
	{Contracted: "wasn't", Expanded: "was not"},
	{Contracted: "we'd", Expanded: "we would"},
	{Contracted: "we'll", Expanded: "we will"},
	{Contracted: "we'll've", Expanded: "we will have"},
	{Contracted: "we're", Expanded: "we are"},
	{Contracted: "we've", Expanded: "we have"},
	{Contracted: "weren't", Expanded: "were not"},
	{Contracted: "what'll", Expanded: "what will"},
	{Contracted: "what'll've", Expanded: "what will have"},
	{Contracted: "what're", Expanded: "what are"},
	{Contracted: "what's", Expanded: "what is"},
	{Contracted: "what've", Expanded: "what have"},
	{Contracted: "when's", Expanded: "when is"},
	{Contracted: "when've", Expanded: "when have"},
	{Contracted: "where'd", Expanded: "where did"},
	{Contracted: "where's", Expanded: "where is"},
	{Contracted: "where've", Expanded: "where have"},
	{Contracted: "who'll", Expanded: "who will"},
	{Contracted: "who'll've", Expanded: "who will have"},
	{Contracted: "who's", Expanded: "who is"},
	{Contracted: "who've", Expanded: "who have"},
	{Contracted: "why's", Expanded: "why is"},
	{Contracted: "will've", Expanded: "will have"},
	{Contracted: "won't", Expanded: "will not"},
	{Contracted: "won't've", Expanded: "will not have"},
	{Contracted: "would've", Expanded: "would have"},
	{Contracted: "wouldn't", Expanded: "would not"},
	{Contracted: "wouldn't've", Expanded: "would not have"},
	{Contracted: "y'all", Expanded: "you all"},
	{Contracted: "y'all'd've", Expanded: "you all would have"},
	{Contracted: "y'all're", Expanded: "you all are"},
	{Contracted: "y'all've", Expanded: "you all have"},
	{Contracted: "you'd", Expanded: "you would"},
	{Contracted: "you'd've", Expanded: "you would have"},
	{Contracted: "you'll", Expanded: "you will"},
	{Contracted: "you'll've", Expanded: "you will have"},
	{Contracted: "you're", Expanded: "you are"},
	{Contracted: "you've", Expanded: "you have"},
}
