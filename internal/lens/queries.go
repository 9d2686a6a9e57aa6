package lens

// Query names, used as metric labels and in logs.
const (
	QueryProfileByID      = "profileById"
	QueryProfileByAddress = "profileByAddress"
	QueryFollowers        = "followers"
)

const mediaFields = `
    ... on NftImage {
      contractAddress
      tokenId
      uri
      verified
    }
    ... on MediaSet {
      original {
        url
        mimeType
      }
    }
    __typename`

const profileFields = `
  id
  name
  bio
  handle
  ownedBy
  picture {` + mediaFields + `
  }
  coverPicture {` + mediaFields + `
  }
  stats {
    totalFollowers
    totalFollowing
  }`

const profileByIDQuery = `query Profile($profileId: ProfileId!) {
  profile(request: { profileId: $profileId }) {` + profileFields + `
  }
}`

const profileByAddressQuery = `query DefaultProfile($address: EthereumAddress!) {
  defaultProfile(request: { ethereumAddress: $address }) {` + profileFields + `
  }
}`

const followersQuery = `query Followers($profileId: ProfileId!, $limit: LimitScalar) {
  followers(request: { profileId: $profileId, limit: $limit }) {
    items {
      wallet {
        address
        defaultProfile {
          id
          name
          handle
          picture {` + mediaFields + `
          }
        }
      }
      totalAmountOfTimesFollowed
    }
  }
}`
